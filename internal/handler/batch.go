package handler

import "net/http"

const (
	batchDefaultPageSize = 20
	// Each batch row runs the full profile-and-score pipeline, so pages
	// stay small relative to the catalog endpoints.
	batchMaxPageSize = 100
	batchMaxPage     = 10000
)

// GET /recommendations/batch
//
// Walks a page of users and generates a list for each one.
func (h *Handler) GetBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", 1, 1, batchMaxPage)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
		return
	}
	pageSize, ok := queryInt(r, "limit", batchDefaultPageSize, 1, batchMaxPageSize)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return
	}

	result, err := h.service.GetBatchRecommendations(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
