package engine

import (
	"reflect"
	"testing"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

func emptyProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Interest: map[domain.Category]float64{},
		History:  domain.ProfileHistory{Seen: map[int64]struct{}{}},
	}
}

func score(cat domain.Category, id int64, s float64) domain.Score {
	return domain.Score{Category: cat, ItemID: id, Score: s}
}

func TestDiversifyBoundAndDedup(t *testing.T) {
	candidates := []domain.Score{
		score(domain.CategoryRecipes, 1, 90),
		score(domain.CategoryRecipes, 1, 80), // duplicate id
		score(domain.CategoryRecipes, 2, 70),
		score(domain.CategoryPhones, 3, 120),
		score(domain.CategoryPhones, 4, 110),
	}

	out := Diversify(candidates, emptyProfile(), 3)

	if len(out) > 3 {
		t.Fatalf("len = %d, want <= 3", len(out))
	}
	seen := map[int64]bool{}
	for _, s := range out {
		if seen[s.ItemID] {
			t.Errorf("item %d appears twice", s.ItemID)
		}
		seen[s.ItemID] = true
	}
}

func TestDiversifyRoundRobinOrder(t *testing.T) {
	// Recipes score far below phones, but round-robin still alternates.
	candidates := []domain.Score{
		score(domain.CategoryRecipes, 1, 10),
		score(domain.CategoryRecipes, 2, 9),
		score(domain.CategoryPhones, 11, 200),
		score(domain.CategoryPhones, 12, 190),
	}

	out := Diversify(candidates, emptyProfile(), 4)

	gotCats := make([]domain.Category, len(out))
	for i, s := range out {
		gotCats[i] = s.Category
	}
	want := []domain.Category{
		domain.CategoryRecipes, domain.CategoryPhones,
		domain.CategoryRecipes, domain.CategoryPhones,
	}
	if !reflect.DeepEqual(gotCats, want) {
		t.Errorf("category order = %v, want %v", gotCats, want)
	}
	// Within a category, higher score first.
	if out[0].ItemID != 1 || out[1].ItemID != 11 {
		t.Errorf("first pass picked %d/%d, want 1/11", out[0].ItemID, out[1].ItemID)
	}
}

func TestDiversifyPrefersUnseen(t *testing.T) {
	profile := emptyProfile()
	profile.History.Seen[1] = struct{}{}

	// Seen item scores higher, but the unseen one goes first.
	candidates := []domain.Score{
		score(domain.CategoryCakes, 1, 100),
		score(domain.CategoryCakes, 2, 50),
	}

	out := Diversify(candidates, profile, 2)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ItemID != 2 {
		t.Errorf("first pick = %d, want unseen item 2", out[0].ItemID)
	}
	if out[1].ItemID != 1 {
		t.Errorf("second pick = %d, want seen fallback item 1", out[1].ItemID)
	}
}

func TestDiversifySeenFallback(t *testing.T) {
	profile := emptyProfile()
	profile.History.Seen[1] = struct{}{}
	profile.History.Seen[2] = struct{}{}

	candidates := []domain.Score{
		score(domain.CategoryPlaces, 1, 60),
		score(domain.CategoryPlaces, 2, 80),
	}

	out := Diversify(candidates, profile, 2)

	// All seen: fall back to score order rather than dropping the category.
	if len(out) != 2 || out[0].ItemID != 2 || out[1].ItemID != 1 {
		t.Errorf("got %v, want seen items by score [2 1]", out)
	}
}

func TestDiversifyIdempotent(t *testing.T) {
	candidates := []domain.Score{
		score(domain.CategorySports, 1, 50),
		score(domain.CategorySports, 2, 50), // tie broken by id
		score(domain.CategoryPhones, 3, 70),
		score(domain.CategoryRecipes, 4, 80),
	}

	first := Diversify(candidates, emptyProfile(), 4)
	second := Diversify(candidates, emptyProfile(), 4)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("diversify not deterministic:\n%v\n%v", first, second)
	}
}

func TestDiversifyEmptyAndZeroLimit(t *testing.T) {
	if out := Diversify(nil, emptyProfile(), 5); len(out) != 0 {
		t.Errorf("nil candidates should yield empty, got %v", out)
	}
	if out := Diversify([]domain.Score{score(domain.CategoryCakes, 1, 10)}, emptyProfile(), 0); len(out) != 0 {
		t.Errorf("zero limit should yield empty, got %v", out)
	}
}
