package engine

import (
	"strconv"
	"time"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

const (
	favoriteBonus = 10.0

	// Linear temporal decay: an event viewed today weighs 1.0 and loses
	// 0.05 per day until the floor.
	decayPerDay = 0.05
	decayFloor  = 0.2

	// Weight multiplier for actually preparing a recipe versus viewing it.
	preparedMultiplier = 2.0

	// Price band around the observed average, and the defaults used when
	// no priced activity exists.
	priceBand       = 0.4
	defaultPriceMax = 10000.0
)

// BuildProfile converts raw history into a UserProfile. Favorites add a
// flat bonus per category; activities add temporally decayed weight.
// Malformed metadata fields are treated as absent, never as errors.
func BuildProfile(userID int64, activities []domain.Activity, favorites []domain.Favorite, mapping domain.CategoryMapping, now time.Time) *domain.UserProfile {
	p := &domain.UserProfile{
		UserID:   userID,
		Interest: make(map[domain.Category]float64, len(domain.Categories)),
		Preferences: domain.Preferences{
			PriceMax: defaultPriceMax,
			Brands:   make(map[string]float64),
		},
		History: domain.ProfileHistory{
			Seen:             make(map[int64]struct{}),
			CategoryWeights:  make(map[int64]float64),
			RecentByCategory: make(map[domain.Category][]int64),
		},
	}

	for _, f := range favorites {
		if !f.IsActive {
			continue
		}
		p.History.Seen[f.ReferenceID] = struct{}{}
		if cat, ok := domain.FavoriteCategories[f.Type]; ok {
			p.Interest[cat] += favoriteBonus
		}
	}

	techSignal := false
	for _, a := range activities {
		if !a.IsActive {
			continue
		}
		w := temporalWeight(a.CreatedAt, now)
		if a.ReferenceID != nil {
			p.History.Seen[*a.ReferenceID] = struct{}{}
		}

		switch a.Type {
		case domain.ActivityItemViewed:
			catID := metaInt64(a.Metadata, domain.MetaCategoryID)
			catName := metaString(a.Metadata, domain.MetaCategoryName)
			cat, ok := mapping.Resolve(catID, catName)
			if !ok {
				continue
			}
			p.Interest[cat] += w
			if catID != 0 {
				p.History.CategoryWeights[catID] += w
			}
			if a.ReferenceID != nil {
				p.History.RecentByCategory[cat] = append(p.History.RecentByCategory[cat], *a.ReferenceID)
			}
			if cat == domain.CategoryPhones || cat == domain.CategoryLaptops {
				techSignal = true
			}
		case domain.ActivityPhoneViewed:
			p.Interest[domain.CategoryPhones] += w
			techSignal = true
		case domain.ActivityRecipeViewed:
			p.Interest[domain.CategoryRecipes] += w
		case domain.ActivityRecipePrepared:
			p.Interest[domain.CategoryRecipes] += w * preparedMultiplier
		}
	}

	if techSignal {
		deriveTechPreferences(p, activities)
	}
	return p
}

// deriveTechPreferences scans activity metadata for brand and price
// fields. Brands count one per event regardless of age; the price band
// is the observed average plus or minus 40%.
func deriveTechPreferences(p *domain.UserProfile, activities []domain.Activity) {
	var priceSum float64
	var priceCount int
	for _, a := range activities {
		if !a.IsActive {
			continue
		}
		if brand := metaString(a.Metadata, domain.MetaBrand); brand != "" {
			p.Preferences.Brands[brand]++
		}
		if price, ok := metaFloat(a.Metadata, domain.MetaPrice); ok && price > 0 {
			priceSum += price
			priceCount++
		}
	}
	if priceCount == 0 {
		return
	}
	avg := priceSum / float64(priceCount)
	p.Preferences.PriceAverage = avg
	p.Preferences.PriceMin = avg * (1 - priceBand)
	p.Preferences.PriceMax = avg * (1 + priceBand)
}

func temporalWeight(at, now time.Time) float64 {
	ageDays := now.Sub(at).Hours() / 24.0
	if ageDays < 0 {
		ageDays = 0
	}
	w := 1 - ageDays*decayPerDay
	if w < decayFloor {
		return decayFloor
	}
	return w
}

// Metadata accessors. The payload is free-form JSON, so every field is
// optional and every type mismatch counts as absent.

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if s, ok := meta[key].(string); ok {
		return s
	}
	return ""
}

func metaInt64(meta map[string]any, key string) int64 {
	if meta == nil {
		return 0
	}
	switch v := meta[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

func metaFloat(meta map[string]any, key string) (float64, bool) {
	if meta == nil {
		return 0, false
	}
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
