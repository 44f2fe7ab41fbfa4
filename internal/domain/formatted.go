package domain

// Formatted item shapes: one variant per category, all sharing the
// id/name/description/image core so the storefront can render a mixed
// list uniformly.

type FormattedRecipe struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Difficulty  string `json:"difficulty"`
	PrepMinutes int    `json:"prep_minutes"`
}

type FormattedPhone struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
}

type FormattedLaptop struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand"`
	RAMGB       int     `json:"ram_gb"`
	StorageGB   int     `json:"storage_gb"`
	Price       float64 `json:"price"`
}

type FormattedAccessory struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
}

type FormattedCake struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Flavor      string  `json:"flavor"`
	Price       float64 `json:"price"`
}

type FormattedPlace struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
}

type FormattedSport struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Discipline  string `json:"discipline"`
}
