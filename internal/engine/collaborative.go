package engine

import (
	"context"
	"time"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

const (
	collaborativeTopUsers     = 5
	collaborativePerUser      = 10
	collaborativeWindowDays   = 90
	collaborativeMaxItems     = 6
	collaborativeBase         = 60.0
	collaborativeReasonString = "A usuarios con gustos parecidos también les interesó"
)

// collaborative surfaces items that similar users engaged with recently
// and the current user has not. The similarity computation is pluggable;
// without one the filter contributes nothing. Every failure inside this
// pass downgrades to "no signal".
func (e *Engine) collaborative(ctx context.Context, profile *domain.UserProfile, now time.Time) []domain.Score {
	if e.similar == nil {
		return nil
	}
	users, err := e.similar.SimilarUsers(ctx, profile.UserID, collaborativeTopUsers)
	if err != nil {
		e.log.Warn().Err(err).Int64("user_id", profile.UserID).Msg("similar-user lookup failed, skipping collaborative pass")
		return nil
	}

	since := now.AddDate(0, 0, -collaborativeWindowDays)
	var out []domain.Score
	picked := make(map[int64]struct{})
	for _, uid := range users {
		if uid == profile.UserID {
			continue
		}
		activities, err := e.activities.Recent(ctx, uid, since, collaborativePerUser)
		if err != nil {
			e.log.Warn().Err(err).Int64("neighbor_id", uid).Msg("neighbor activity fetch failed")
			continue
		}
		for _, a := range activities {
			if !a.IsActive || a.ReferenceID == nil {
				continue
			}
			cat, ok := activityCategory(a, e.mapping)
			if !ok {
				continue
			}
			itemID := *a.ReferenceID
			if _, dup := picked[itemID]; dup {
				continue
			}
			has, err := e.activities.HasActivity(ctx, profile.UserID, itemID, string(a.Type))
			if err != nil || has {
				continue
			}
			picked[itemID] = struct{}{}
			out = append(out, domain.Score{
				Category: cat,
				ItemID:   itemID,
				Score:    collaborativeBase,
				Reasons:  []string{collaborativeReasonString},
			})
		}
	}
	return out
}

// activityCategory resolves the profile category an activity belongs to.
func activityCategory(a domain.Activity, mapping domain.CategoryMapping) (domain.Category, bool) {
	switch a.Type {
	case domain.ActivityPhoneViewed:
		return domain.CategoryPhones, true
	case domain.ActivityRecipeViewed, domain.ActivityRecipePrepared:
		return domain.CategoryRecipes, true
	case domain.ActivityItemViewed:
		return mapping.Resolve(metaInt64(a.Metadata, domain.MetaCategoryID), metaString(a.Metadata, domain.MetaCategoryName))
	}
	return "", false
}

// NoSimilarUsers is the default similarity strategy: it finds nobody.
// It keeps the aggregation seam above exercised end to end until a real
// similarity computation is plugged in.
type NoSimilarUsers struct{}

func (NoSimilarUsers) SimilarUsers(ctx context.Context, userID int64, limit int) ([]int64, error) {
	return nil, nil
}
