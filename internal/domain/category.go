package domain

import "strings"

// Category identifies one of the seven recommendation verticals. The string
// values are the tags the storefront uses, so they appear as-is in API output.
type Category string

const (
	CategoryRecipes     Category = "recetas"
	CategoryPhones      Category = "celulares"
	CategoryLaptops     Category = "laptops"
	CategoryAccessories Category = "accesorios"
	CategoryCakes       Category = "tortas"
	CategoryPlaces      Category = "lugares"
	CategorySports      Category = "deportes"
)

// Categories is the fixed ordering used for round-robin interleaving.
var Categories = []Category{
	CategoryRecipes,
	CategoryPhones,
	CategoryLaptops,
	CategoryAccessories,
	CategoryCakes,
	CategoryPlaces,
	CategorySports,
}

// FavoriteCategories maps a favorite's type tag to its profile category.
var FavoriteCategories = map[string]Category{
	"receta":    CategoryRecipes,
	"celular":   CategoryPhones,
	"laptop":    CategoryLaptops,
	"accesorio": CategoryAccessories,
	"torta":     CategoryCakes,
	"lugar":     CategoryPlaces,
	"deporte":   CategorySports,
}

// CategoryHint matches a catalog category name by lowercase substring.
type CategoryHint struct {
	Substring string
	Category  Category
}

// CategoryMapping resolves the marketplace's mutable catalog taxonomy
// (numeric category ids, free-form category names) to fixed profile
// categories. The ids change when the catalog is reorganized, so the
// mapping is configurable rather than hard-coded at the call sites.
type CategoryMapping struct {
	IDs   map[int64]Category
	Hints []CategoryHint
}

// DefaultCategoryMapping returns the mapping for the current catalog layout.
func DefaultCategoryMapping() CategoryMapping {
	return CategoryMapping{
		IDs: map[int64]Category{
			54: CategoryPhones,
			55: CategoryLaptops,
			56: CategoryAccessories,
		},
		Hints: []CategoryHint{
			{Substring: "celular", Category: CategoryPhones},
			{Substring: "telefon", Category: CategoryPhones},
			{Substring: "laptop", Category: CategoryLaptops},
			{Substring: "notebook", Category: CategoryLaptops},
			{Substring: "accesorio", Category: CategoryAccessories},
		},
	}
}

// Resolve maps a catalog category id or name to a profile category.
// The id wins over the name; name matching is a lowercase substring scan.
func (m CategoryMapping) Resolve(id int64, name string) (Category, bool) {
	if cat, ok := m.IDs[id]; ok {
		return cat, true
	}
	lower := strings.ToLower(name)
	if lower == "" {
		return "", false
	}
	for _, h := range m.Hints {
		if strings.Contains(lower, h.Substring) {
			return h.Category, true
		}
	}
	return "", false
}

// Merge overlays non-empty override entries onto the mapping. Used by the
// config layer to remap catalog ids without a code change.
func (m CategoryMapping) Merge(ids map[int64]Category) CategoryMapping {
	if len(ids) == 0 {
		return m
	}
	merged := CategoryMapping{
		IDs:   make(map[int64]Category, len(m.IDs)+len(ids)),
		Hints: m.Hints,
	}
	for id, cat := range m.IDs {
		merged.IDs[id] = cat
	}
	for id, cat := range ids {
		merged.IDs[id] = cat
	}
	return merged
}
