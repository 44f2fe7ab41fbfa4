package engine

import (
	"context"
	"fmt"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
	"github.com/mercaditolabs/recommendation-service/internal/metrics"
)

// scorerConfig parameterizes the one generic category scorer. The seven
// categories share the same query → score → bonus/penalty shape and
// differ only in these constants.
type scorerConfig struct {
	category       domain.Category
	base           float64 // baseline desirability of the category
	interestWeight float64 // multiplier on the profile's interest score
	seenPenalty    float64
	skipSeen       bool // drop already-seen candidates instead of penalizing
	brandBonus     float64
	candidates     int
	fallback       string // substring for the generic product catalog fallback
	reason         string
}

func scorerConfigs() []scorerConfig {
	return []scorerConfig{
		{category: domain.CategoryRecipes, base: 80, interestWeight: 10, seenPenalty: 25, candidates: 6, fallback: "receta", reason: "Recetas que encajan con lo que cocinas"},
		{category: domain.CategoryPhones, base: 100, interestWeight: 15, skipSeen: true, brandBonus: 40, candidates: 8, fallback: "celular", reason: "Basado en tu interés en celulares"},
		{category: domain.CategoryLaptops, base: 90, interestWeight: 12, seenPenalty: 30, brandBonus: 35, candidates: 6, fallback: "laptop", reason: "Laptops según lo que has visto"},
		{category: domain.CategoryAccessories, base: 70, interestWeight: 8, seenPenalty: 20, brandBonus: 25, candidates: 6, fallback: "accesorio", reason: "Accesorios que combinan con tus equipos"},
		{category: domain.CategoryCakes, base: 75, interestWeight: 10, seenPenalty: 25, candidates: 5, fallback: "torta", reason: "Tortas populares cerca de ti"},
		{category: domain.CategoryPlaces, base: 60, interestWeight: 8, seenPenalty: 20, candidates: 5, fallback: "lugar", reason: "Lugares que podrían gustarte"},
		{category: domain.CategorySports, base: 50, interestWeight: 5, seenPenalty: 20, candidates: 4, fallback: "deporte", reason: "Actividades deportivas para ti"},
	}
}

// scoreCategory queries one category's candidates and scores them against
// the profile. Catalog failures degrade to an empty list so the request
// as a whole keeps going.
func (e *Engine) scoreCategory(ctx context.Context, sc scorerConfig, profile *domain.UserProfile) []domain.Score {
	items, err := e.catalog.TopCandidates(ctx, sc.category, sc.candidates)
	if err != nil {
		e.log.Warn().Err(err).Str("category", string(sc.category)).Msg("catalog query failed, skipping category")
		metrics.ScorerFailures.WithLabelValues(string(sc.category)).Inc()
		return nil
	}
	if len(items) == 0 {
		// The specialized catalog may be empty after a reorganization;
		// fall back to the generic product table by category name.
		items, err = e.catalog.ProductsByCategoryName(ctx, sc.fallback, sc.candidates)
		if err != nil {
			e.log.Warn().Err(err).Str("category", string(sc.category)).Msg("fallback catalog query failed, skipping category")
			metrics.ScorerFailures.WithLabelValues(string(sc.category)).Inc()
			return nil
		}
	}

	interest := profile.Interest[sc.category]
	out := make([]domain.Score, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		seen := profile.HasSeen(item.ItemID())
		if seen && sc.skipSeen {
			continue
		}

		score := sc.base + interest*sc.interestWeight
		reasons := []string{sc.reason}
		if seen {
			score -= sc.seenPenalty
			reasons = append(reasons, "Ya lo viste antes")
		}
		if brand := item.ItemBrand(); brand != "" && sc.brandBonus > 0 && profile.Preferences.Brands[brand] > 0 {
			score += sc.brandBonus
			reasons = append(reasons, fmt.Sprintf("De %s, una marca que sueles ver", brand))
		}

		out = append(out, domain.Score{
			Category: sc.category,
			ItemID:   item.ItemID(),
			Score:    score,
			Reasons:  reasons,
			Raw:      item,
		})
	}
	return out
}
