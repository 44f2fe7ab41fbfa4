// Package engine builds per-user interest profiles from browsing and
// favorite history, scores candidates across the seven marketplace
// categories, blends in a collaborative signal, and merges everything
// into one diversified list.
//
// The engine is read-only: it consumes activity, favorite, and catalog
// queries and returns a formatted list. Every strategy degrades to an
// empty contribution on failure, so a recommendation request never
// errors out because one catalog did.
package engine

import (
	"context"
	"time"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit is the result size when the caller does not ask for one.
	DefaultLimit = 12

	defaultWindowDays    = 60
	defaultMaxActivities = 200
)

// ActivityStore supplies a user's recent interaction events.
type ActivityStore interface {
	// Recent returns active events since the given time, newest first,
	// capped at max.
	Recent(ctx context.Context, userID int64, since time.Time, max int) ([]domain.Activity, error)
	// HasActivity reports whether the user has any event for the item.
	HasActivity(ctx context.Context, userID, referenceID int64, referenceType string) (bool, error)
}

// FavoriteStore supplies a user's active favorites.
type FavoriteStore interface {
	Active(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

// Catalog reads candidates from the per-category catalogs, with a generic
// product lookup as fallback.
type Catalog interface {
	TopCandidates(ctx context.Context, category domain.Category, n int) ([]domain.RawItem, error)
	ProductsByCategoryName(ctx context.Context, text string, n int) ([]domain.RawItem, error)
}

// SimilarUsers is the pluggable similarity strategy behind the
// collaborative filter. Implementations may use co-favorite overlap,
// activity similarity, or anything else; a nil strategy means no
// collaborative signal.
type SimilarUsers interface {
	SimilarUsers(ctx context.Context, userID int64, limit int) ([]int64, error)
}

// Config tunes the engine. Zero values fall back to defaults.
type Config struct {
	Mapping       domain.CategoryMapping
	WindowDays    int
	MaxActivities int
}

type Engine struct {
	activities ActivityStore
	favorites  FavoriteStore
	catalog    Catalog
	similar    SimilarUsers

	mapping       domain.CategoryMapping
	windowDays    int
	maxActivities int

	log zerolog.Logger
	now func() time.Time
}

func New(activities ActivityStore, favorites FavoriteStore, catalog Catalog, similar SimilarUsers, cfg Config, logger zerolog.Logger) *Engine {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = defaultWindowDays
	}
	if cfg.MaxActivities <= 0 {
		cfg.MaxActivities = defaultMaxActivities
	}
	if cfg.Mapping.IDs == nil && cfg.Mapping.Hints == nil {
		cfg.Mapping = domain.DefaultCategoryMapping()
	}
	return &Engine{
		activities:    activities,
		favorites:     favorites,
		catalog:       catalog,
		similar:       similar,
		mapping:       cfg.Mapping,
		windowDays:    cfg.WindowDays,
		maxActivities: cfg.MaxActivities,
		log:           logger.With().Str("component", "engine").Logger(),
		now:           time.Now,
	}
}

// Recommend produces up to limit formatted recommendations for the user.
// It always returns a best-effort list; the only error-shaped outcome a
// caller can observe is a short or empty result.
func (e *Engine) Recommend(ctx context.Context, userID int64, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	now := e.now()

	activities, err := e.activities.Recent(ctx, userID, now.AddDate(0, 0, -e.windowDays), e.maxActivities)
	if err != nil {
		e.log.Warn().Err(err).Int64("user_id", userID).Msg("activity fetch failed, profiling without history")
		activities = nil
	}
	favorites, err := e.favorites.Active(ctx, userID)
	if err != nil {
		e.log.Warn().Err(err).Int64("user_id", userID).Msg("favorites fetch failed, profiling without favorites")
		favorites = nil
	}

	profile := BuildProfile(userID, activities, favorites, e.mapping, now)
	coldStart := profile.ColdStart()

	// Fan out: one goroutine per invoked scorer plus the collaborative
	// filter. Scorers never return errors upward; each writes its own
	// slot, so no locking is needed.
	configs := scorerConfigs()
	results := make([][]domain.Score, len(configs))
	var collaborative []domain.Score

	g, gctx := errgroup.WithContext(ctx)
	for i, sc := range configs {
		if !coldStart && profile.Interest[sc.category] <= 0 {
			continue
		}
		i, sc := i, sc
		g.Go(func() error {
			results[i] = e.scoreCategory(gctx, sc, profile)
			return nil
		})
	}
	g.Go(func() error {
		collaborative = e.collaborative(gctx, profile, now)
		return nil
	})
	_ = g.Wait()

	var candidates []domain.Score
	collected := make(map[int64]struct{})
	for _, part := range results {
		for _, s := range part {
			candidates = append(candidates, s)
			collected[s.ItemID] = struct{}{}
		}
	}
	// Collaborative candidates skip anything a scorer already surfaced
	// and are capped independently of the category lists.
	added := 0
	for _, s := range collaborative {
		if added >= collaborativeMaxItems {
			break
		}
		if _, dup := collected[s.ItemID]; dup {
			continue
		}
		candidates = append(candidates, s)
		collected[s.ItemID] = struct{}{}
		added++
	}

	selected := Diversify(candidates, profile, limit)

	out := make([]domain.Recommendation, 0, len(selected))
	for _, s := range selected {
		out = append(out, domain.Recommendation{
			Category: s.Category,
			ItemID:   s.ItemID,
			Score:    s.Score,
			Reasons:  s.Reasons,
			Item:     FormatItem(s.Category, s.Raw),
		})
	}
	return out, nil
}
