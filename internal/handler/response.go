package handler

import "github.com/mercaditolabs/recommendation-service/internal/domain"

type RecommendationResponse struct {
	UserID          int64                     `json:"user_id"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type ActivityRequest struct {
	Type        domain.ActivityType `json:"type"`
	ReferenceID *int64              `json:"reference_id,omitempty"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
