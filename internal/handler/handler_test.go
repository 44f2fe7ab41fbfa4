package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Validation runs before any service call, so a handler without a
// service behind it is enough to cover the rejection paths.
func testRouter() http.Handler {
	h := NewHandler(nil)
	r := chi.NewRouter()
	r.Get("/users/{userID}/recommendations", h.GetRecommendations)
	r.Get("/recommendations/batch", h.GetBatchRecommendations)
	return r
}

func get(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body ErrorResponse
	if rec.Code != http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode error body for %s: %v", target, err)
		}
	}
	return rec, body
}

func TestGetRecommendationsRejectsBadParams(t *testing.T) {
	router := testRouter()
	targets := []string{
		"/users/abc/recommendations",
		"/users/0/recommendations",
		"/users/-3/recommendations",
		"/users/1/recommendations?limit=0",
		"/users/1/recommendations?limit=51",
		"/users/1/recommendations?limit=doce",
	}
	for _, target := range targets {
		rec, body := get(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		if body.Error != "invalid_parameter" {
			t.Errorf("%s: error = %q, want invalid_parameter", target, body.Error)
		}
	}
}

func TestGetBatchRecommendationsRejectsBadParams(t *testing.T) {
	router := testRouter()
	targets := []string{
		"/recommendations/batch?page=0",
		"/recommendations/batch?page=10001",
		"/recommendations/batch?page=dos",
		"/recommendations/batch?limit=0",
		"/recommendations/batch?limit=101",
		"/recommendations/batch?limit=veinte",
	}
	for _, target := range targets {
		rec, body := get(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		if body.Error != "invalid_parameter" {
			t.Errorf("%s: error = %q, want invalid_parameter", target, body.Error)
		}
	}
}

func TestQueryIntDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/recommendations/batch", nil)

	if v, ok := queryInt(r, "page", 1, 1, batchMaxPage); !ok || v != 1 {
		t.Errorf("absent page = %d, %v; want default 1", v, ok)
	}
	if v, ok := queryInt(r, "limit", batchDefaultPageSize, 1, batchMaxPageSize); !ok || v != batchDefaultPageSize {
		t.Errorf("absent limit = %d, %v; want default %d", v, ok, batchDefaultPageSize)
	}

	r = httptest.NewRequest(http.MethodGet, "/recommendations/batch?page=7&limit=100", nil)
	if v, ok := queryInt(r, "page", 1, 1, batchMaxPage); !ok || v != 7 {
		t.Errorf("page = %d, %v; want 7", v, ok)
	}
	if v, ok := queryInt(r, "limit", batchDefaultPageSize, 1, batchMaxPageSize); !ok || v != 100 {
		t.Errorf("limit = %d, %v; want upper bound 100 accepted", v, ok)
	}
}
