package domain

// Score is one scored candidate produced by a category scorer or by the
// collaborative filter, before diversification.
type Score struct {
	Category Category
	ItemID   int64
	Score    float64
	Reasons  []string
	Raw      RawItem
}

// Recommendation is one entry of the final formatted list.
type Recommendation struct {
	Category Category `json:"category"`
	ItemID   int64    `json:"itemId"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
	Item     any      `json:"item"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []Recommendation
	CacheHit        bool
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchUserResult struct {
	UserID          int64            `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Status          BatchStatus      `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
