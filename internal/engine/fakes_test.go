package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

type fakeActivities struct {
	byUser    map[int64][]domain.Activity
	has       map[string]bool
	recentErr error
	hasErr    error
}

func (f *fakeActivities) Recent(_ context.Context, userID int64, since time.Time, max int) ([]domain.Activity, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var out []domain.Activity
	for _, a := range f.byUser[userID] {
		if !a.IsActive || a.CreatedAt.Before(since) {
			continue
		}
		out = append(out, a)
		if len(out) >= max {
			break
		}
	}
	return out, nil
}

func (f *fakeActivities) HasActivity(_ context.Context, userID, referenceID int64, _ string) (bool, error) {
	if f.hasErr != nil {
		return false, f.hasErr
	}
	return f.has[fmt.Sprintf("%d:%d", userID, referenceID)], nil
}

type fakeFavorites struct {
	byUser map[int64][]domain.Favorite
	err    error
}

func (f *fakeFavorites) Active(_ context.Context, userID int64) ([]domain.Favorite, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Favorite
	for _, fav := range f.byUser[userID] {
		if fav.IsActive {
			out = append(out, fav)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	mu       sync.Mutex
	items    map[domain.Category][]domain.RawItem
	products map[string][]domain.RawItem
	err      error
	queried  []domain.Category
}

func (f *fakeCatalog) TopCandidates(_ context.Context, category domain.Category, n int) ([]domain.RawItem, error) {
	f.mu.Lock()
	f.queried = append(f.queried, category)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	items := f.items[category]
	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (f *fakeCatalog) ProductsByCategoryName(_ context.Context, text string, n int) ([]domain.RawItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := f.products[text]
	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (f *fakeCatalog) queriedCategories() map[domain.Category]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[domain.Category]int)
	for _, cat := range f.queried {
		counts[cat]++
	}
	return counts
}

type fakeSimilar struct {
	users []int64
	err   error
}

func (f *fakeSimilar) SimilarUsers(_ context.Context, _ int64, limit int) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.users) > limit {
		return f.users[:limit], nil
	}
	return f.users, nil
}

func ptr(v int64) *int64 { return &v }

// fullCatalog returns a catalog with two items in every category.
func fullCatalog() *fakeCatalog {
	return &fakeCatalog{
		items: map[domain.Category][]domain.RawItem{
			domain.CategoryRecipes: {
				domain.Recipe{ID: 101, Name: "Lomo saltado", Difficulty: "media", PrepMinutes: 40},
				domain.Recipe{ID: 102, Name: "Aji de gallina", Difficulty: "media", PrepMinutes: 50},
			},
			domain.CategoryPhones: {
				domain.Phone{ID: 201, Model: "Galaxy S24", Brand: "Samsung", Price: 3500},
				domain.Phone{ID: 202, Model: "iPhone 15", Brand: "Apple", Price: 4200},
			},
			domain.CategoryLaptops: {
				domain.Laptop{ID: 301, Model: "ThinkPad X1", Brand: "Lenovo", Price: 5200, RAMGB: 16},
				domain.Laptop{ID: 302, Model: "MacBook Air", Brand: "Apple", Price: 4800, RAMGB: 8},
			},
			domain.CategoryAccessories: {
				domain.Accessory{ID: 401, Name: "Audifonos BT", Brand: "Sony", Price: 250},
				domain.Accessory{ID: 402, Name: "Mouse gamer", Brand: "Logitech", Price: 180},
			},
			domain.CategoryCakes: {
				domain.Cake{ID: 501, Name: "Torta de chocolate", Flavor: "chocolate", Price: 80},
				domain.Cake{ID: 502, Name: "Torta tres leches", Flavor: "vainilla", Price: 75},
			},
			domain.CategoryPlaces: {
				domain.Place{ID: 601, Name: "Parque Kennedy", Rating: 4.5},
				domain.Place{ID: 602, Name: "Malecon de Miraflores", Rating: 4.8},
			},
			domain.CategorySports: {
				domain.Sport{ID: 701, Name: "Futbol 7", Discipline: "futbol"},
				domain.Sport{ID: 702, Name: "Voley playa", Discipline: "voley"},
			},
		},
	}
}
