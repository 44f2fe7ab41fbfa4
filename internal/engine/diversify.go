package engine

import (
	"sort"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

// Diversify merges scored candidates into a bounded list that interleaves
// categories instead of front-loading the highest-scoring one.
//
// Candidates are partitioned by category and each partition sorted by
// score descending (ties broken by item id so identical inputs always
// produce identical output). Selection then walks the categories in
// their fixed order, taking from each partition the best not-yet-selected
// candidate the user has not seen; when a partition only has seen
// candidates left, the best remaining one is taken anyway. No item id
// appears twice and the result never exceeds limit.
func Diversify(candidates []domain.Score, profile *domain.UserProfile, limit int) []domain.Score {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	partitions := make(map[domain.Category][]domain.Score)
	for _, c := range candidates {
		partitions[c.Category] = append(partitions[c.Category], c)
	}
	for cat := range partitions {
		part := partitions[cat]
		sort.SliceStable(part, func(i, j int) bool {
			if part[i].Score != part[j].Score {
				return part[i].Score > part[j].Score
			}
			return part[i].ItemID < part[j].ItemID
		})
	}

	// Fixed round-robin order: the known categories first, then any
	// stray tags in first-appearance order.
	var order []domain.Category
	for _, cat := range domain.Categories {
		if len(partitions[cat]) > 0 {
			order = append(order, cat)
		}
	}
	known := make(map[domain.Category]struct{}, len(order))
	for _, cat := range order {
		known[cat] = struct{}{}
	}
	for _, c := range candidates {
		if _, ok := known[c.Category]; !ok {
			known[c.Category] = struct{}{}
			order = append(order, c.Category)
		}
	}

	selected := make([]domain.Score, 0, limit)
	used := make(map[int64]struct{})

	for len(selected) < limit {
		progressed := false
		for _, cat := range order {
			if len(selected) >= limit {
				break
			}
			pick, ok := takeBest(partitions[cat], used, profile)
			if !ok {
				continue
			}
			used[pick.ItemID] = struct{}{}
			selected = append(selected, pick)
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return selected
}

// takeBest returns the best unselected candidate from the partition,
// preferring ones outside the profile's seen-set.
func takeBest(part []domain.Score, used map[int64]struct{}, profile *domain.UserProfile) (domain.Score, bool) {
	var fallback *domain.Score
	for i := range part {
		if _, taken := used[part[i].ItemID]; taken {
			continue
		}
		if !profile.HasSeen(part[i].ItemID) {
			return part[i], true
		}
		if fallback == nil {
			fallback = &part[i]
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return domain.Score{}, false
}
