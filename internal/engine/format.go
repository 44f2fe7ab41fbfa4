package engine

import "github.com/mercaditolabs/recommendation-service/internal/domain"

// FormatItem projects a heterogeneous raw catalog record into the
// normalized shape for its category. A nil raw item stays nil (the
// collaborative pass surfaces ids without catalog records), and any
// record that does not match the category's expected shape passes
// through unchanged rather than failing; generic product fallback rows
// land here too.
func FormatItem(category domain.Category, raw domain.RawItem) any {
	if raw == nil {
		return nil
	}
	switch category {
	case domain.CategoryRecipes:
		if r, ok := raw.(domain.Recipe); ok {
			return domain.FormattedRecipe{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Description,
				Image:       r.Image,
				Difficulty:  r.Difficulty,
				PrepMinutes: r.PrepMinutes,
			}
		}
	case domain.CategoryPhones:
		if p, ok := raw.(domain.Phone); ok {
			return domain.FormattedPhone{
				ID:          p.ID,
				Name:        p.Brand + " " + p.Model,
				Description: p.Description,
				Image:       p.Image,
				Brand:       p.Brand,
				Model:       p.Model,
				Price:       p.Price,
			}
		}
	case domain.CategoryLaptops:
		if l, ok := raw.(domain.Laptop); ok {
			return domain.FormattedLaptop{
				ID:          l.ID,
				Name:        l.Brand + " " + l.Model,
				Description: "",
				Image:       l.Image,
				Brand:       l.Brand,
				RAMGB:       l.RAMGB,
				StorageGB:   l.StorageGB,
				Price:       l.Price,
			}
		}
	case domain.CategoryAccessories:
		if a, ok := raw.(domain.Accessory); ok {
			return domain.FormattedAccessory{
				ID:          a.ID,
				Name:        a.Name,
				Description: "",
				Image:       a.Image,
				Brand:       a.Brand,
				Price:       a.Price,
			}
		}
	case domain.CategoryCakes:
		if c, ok := raw.(domain.Cake); ok {
			return domain.FormattedCake{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
				Image:       c.Image,
				Flavor:      c.Flavor,
				Price:       c.Price,
			}
		}
	case domain.CategoryPlaces:
		if p, ok := raw.(domain.Place); ok {
			return domain.FormattedPlace{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Image:       p.Image,
				Address:     p.Address,
				Rating:      p.Rating,
			}
		}
	case domain.CategorySports:
		if s, ok := raw.(domain.Sport); ok {
			return domain.FormattedSport{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Image:       s.Image,
				Discipline:  s.Discipline,
			}
		}
	}
	return raw
}
