package domain

import "time"

// ActivityType enumerates the interaction events the storefront records.
type ActivityType string

const (
	ActivityItemViewed     ActivityType = "item_viewed"
	ActivityPhoneViewed    ActivityType = "phone_viewed"
	ActivityRecipeViewed   ActivityType = "recipe_viewed"
	ActivityRecipePrepared ActivityType = "recipe_prepared"
)

// Metadata keys the engine understands. Anything else in the metadata
// payload is ignored.
const (
	MetaCategoryID   = "categoryId"
	MetaCategoryName = "categoryName"
	MetaBrand        = "brand"
	MetaPrice        = "price"
)

// Activity is one recorded user interaction. Immutable once written;
// the engine only ever reads these.
type Activity struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	Type        ActivityType   `json:"type"`
	ReferenceID *int64         `json:"reference_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Favorite is an explicit save of an item, treated as a strong positive
// signal regardless of age.
type Favorite struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Type        string `json:"type"`
	ReferenceID int64  `json:"reference_id"`
	IsActive    bool   `json:"is_active"`
}
