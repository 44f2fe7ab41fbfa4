package domain

// Preferences aggregates the price band and brand affinities derived from
// a user's phone/laptop browsing.
type Preferences struct {
	PriceMin     float64            `json:"price_min"`
	PriceMax     float64            `json:"price_max"`
	PriceAverage float64            `json:"price_average"`
	Brands       map[string]float64 `json:"marcas"`
}

// ProfileHistory tracks what the user has already engaged with.
type ProfileHistory struct {
	// Seen holds every item id referenced by a favorite or activity.
	Seen map[int64]struct{} `json:"-"`
	// CategoryWeights accumulates decayed weight per catalog category id.
	CategoryWeights map[int64]float64 `json:"category_weights"`
	// RecentByCategory buckets recently viewed item ids per profile category.
	RecentByCategory map[Category][]int64 `json:"recent_by_category"`
}

// UserProfile is the per-request interest snapshot the scorers bias on.
// It is rebuilt from raw history on every recommendation request and
// never persisted or shared across requests.
type UserProfile struct {
	UserID      int64                `json:"user_id"`
	Interest    map[Category]float64 `json:"interest"`
	Preferences Preferences          `json:"preferences"`
	History     ProfileHistory       `json:"history"`
}

// HasSeen reports whether the user already favorited or viewed the item.
func (p *UserProfile) HasSeen(itemID int64) bool {
	_, ok := p.History.Seen[itemID]
	return ok
}

// ColdStart reports whether no category carries any interest signal.
func (p *UserProfile) ColdStart() bool {
	for _, score := range p.Interest {
		if score > 0 {
			return false
		}
	}
	return true
}
