package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

func cfProfile() *domain.UserProfile {
	p := emptyProfile()
	p.UserID = 1
	return p
}

func TestCollaborativeNilStrategy(t *testing.T) {
	e := newTestEngine(fullCatalog(), nil, nil, nil)
	if out := e.collaborative(context.Background(), cfProfile(), testNow); out != nil {
		t.Errorf("nil strategy should contribute nothing, got %v", out)
	}
}

func TestCollaborativeDefaultStubIsNoOp(t *testing.T) {
	e := newTestEngine(fullCatalog(), nil, nil, NoSimilarUsers{})
	if out := e.collaborative(context.Background(), cfProfile(), testNow); len(out) != 0 {
		t.Errorf("stub similarity should find nobody, got %v", out)
	}
}

func TestCollaborativeAggregation(t *testing.T) {
	activities := &fakeActivities{
		byUser: map[int64][]domain.Activity{
			2: {
				{UserID: 2, Type: domain.ActivityPhoneViewed, ReferenceID: ptr(210), IsActive: true, CreatedAt: daysAgo(3)},
				// Dropped: current user already has an activity for it.
				{UserID: 2, Type: domain.ActivityPhoneViewed, ReferenceID: ptr(211), IsActive: true, CreatedAt: daysAgo(4)},
				// Dropped: no reference id.
				{UserID: 2, Type: domain.ActivityPhoneViewed, IsActive: true, CreatedAt: daysAgo(4)},
				// Dropped: category not resolvable.
				{UserID: 2, Type: domain.ActivityItemViewed, ReferenceID: ptr(212), IsActive: true, CreatedAt: daysAgo(5),
					Metadata: map[string]any{domain.MetaCategoryName: "Jardineria"}},
			},
			3: {
				// Duplicate of a neighbor's item: only surfaced once.
				{UserID: 3, Type: domain.ActivityPhoneViewed, ReferenceID: ptr(210), IsActive: true, CreatedAt: daysAgo(2)},
				{UserID: 3, Type: domain.ActivityRecipeViewed, ReferenceID: ptr(150), IsActive: true, CreatedAt: daysAgo(6)},
			},
		},
		has: map[string]bool{"1:211": true},
	}
	e := newTestEngine(fullCatalog(), activities, nil, &fakeSimilar{users: []int64{2, 3}})

	out := e.collaborative(context.Background(), cfProfile(), testNow)

	ids := make(map[int64]domain.Category, len(out))
	for _, s := range out {
		if _, dup := ids[s.ItemID]; dup {
			t.Errorf("item %d surfaced twice", s.ItemID)
		}
		ids[s.ItemID] = s.Category
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates (%v), want 2", len(out), ids)
	}
	if ids[210] != domain.CategoryPhones {
		t.Errorf("item 210 category = %s, want %s", ids[210], domain.CategoryPhones)
	}
	if ids[150] != domain.CategoryRecipes {
		t.Errorf("item 150 category = %s, want %s", ids[150], domain.CategoryRecipes)
	}
	for _, s := range out {
		if s.Raw != nil {
			t.Errorf("collaborative candidates carry no raw item, got %v", s.Raw)
		}
		if len(s.Reasons) == 0 {
			t.Error("collaborative candidates need a reason")
		}
	}
}

func TestCollaborativeErrorsDegradeToEmpty(t *testing.T) {
	e := newTestEngine(fullCatalog(), nil, nil, &fakeSimilar{err: errors.New("boom")})
	if out := e.collaborative(context.Background(), cfProfile(), testNow); len(out) != 0 {
		t.Errorf("similarity failure must degrade to no signal, got %v", out)
	}

	activities := &fakeActivities{recentErr: errors.New("boom")}
	e = newTestEngine(fullCatalog(), activities, nil, &fakeSimilar{users: []int64{2}})
	if out := e.collaborative(context.Background(), cfProfile(), testNow); len(out) != 0 {
		t.Errorf("neighbor fetch failure must degrade to no signal, got %v", out)
	}
}

func TestCollaborativeCapInRecommend(t *testing.T) {
	// Empty catalogs so only the collaborative pass contributes; a
	// neighbor with ten qualifying events may surface at most six items.
	var neighborActs []domain.Activity
	for i := int64(0); i < 10; i++ {
		neighborActs = append(neighborActs, domain.Activity{
			UserID: 2, Type: domain.ActivityPhoneViewed, ReferenceID: ptr(500 + i),
			IsActive: true, CreatedAt: daysAgo(int(i) + 1),
		})
	}
	activities := &fakeActivities{byUser: map[int64][]domain.Activity{2: neighborActs}}
	e := newTestEngine(&fakeCatalog{}, activities, nil, &fakeSimilar{users: []int64{2}})

	out, err := e.Recommend(context.Background(), 1, 12)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(out) != collaborativeMaxItems {
		t.Errorf("collaborative contribution = %d items, want cap %d", len(out), collaborativeMaxItems)
	}
	for _, rec := range out {
		if rec.Item != nil {
			t.Errorf("collaborative recommendation item should be null, got %v", rec.Item)
		}
	}
}
