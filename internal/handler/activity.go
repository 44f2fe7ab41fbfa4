package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

// POST /users/{userID}/activities
func (h *Handler) AddActivity(w http.ResponseWriter, r *http.Request) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Field 'type' is required")
		return
	}

	activity := domain.Activity{
		UserID:      userID,
		Type:        req.Type,
		ReferenceID: req.ReferenceID,
		Metadata:    req.Metadata,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.service.AddActivity(r.Context(), activity); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}
