package repository

import (
	"context"
	"fmt"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

// TopCandidates reads up to n candidates from the category's own
// catalog, each ordered by its domain-appropriate default: popularity
// where the table tracks it, recency for fast-moving tech, alphabetical
// otherwise.
func (r *Repository) TopCandidates(ctx context.Context, category domain.Category, n int) ([]domain.RawItem, error) {
	switch category {
	case domain.CategoryRecipes:
		return r.topRecipes(ctx, n)
	case domain.CategoryPhones:
		return r.topPhones(ctx, n)
	case domain.CategoryLaptops:
		return r.topLaptops(ctx, n)
	case domain.CategoryAccessories:
		return r.topAccessories(ctx, n)
	case domain.CategoryCakes:
		return r.topCakes(ctx, n)
	case domain.CategoryPlaces:
		return r.topPlaces(ctx, n)
	case domain.CategorySports:
		return r.topSports(ctx, n)
	}
	return nil, fmt.Errorf("unknown catalog category %q", category)
}

func (r *Repository) topRecipes(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, image, difficulty, prep_minutes, portions
		 FROM recipes ORDER BY name LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Recipe
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Image, &v.Difficulty, &v.PrepMinutes, &v.Portions); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *Repository) topPhones(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, model, brand, price, description, image
		 FROM phones ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query phones: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Phone
		if err := rows.Scan(&v.ID, &v.Model, &v.Brand, &v.Price, &v.Description, &v.Image); err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *Repository) topLaptops(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, model, brand, price, ram_gb, storage_gb, image
		 FROM laptops ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query laptops: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Laptop
		if err := rows.Scan(&v.ID, &v.Model, &v.Brand, &v.Price, &v.RAMGB, &v.StorageGB, &v.Image); err != nil {
			return nil, fmt.Errorf("scan laptop: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *Repository) topAccessories(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, brand, price, image
		 FROM accessories ORDER BY name LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query accessories: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Accessory
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Price, &v.Image); err != nil {
			return nil, fmt.Errorf("scan accessory: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *Repository) topCakes(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, flavor, price, description, image
		 FROM cakes ORDER BY orders_count DESC, id LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query cakes: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Cake
		if err := rows.Scan(&v.ID, &v.Name, &v.Flavor, &v.Price, &v.Description, &v.Image); err != nil {
			return nil, fmt.Errorf("scan cake: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *Repository) topPlaces(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, address, rating, description, image
		 FROM places ORDER BY rating DESC, id LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query places: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Place
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Rating, &v.Description, &v.Image); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *Repository) topSports(ctx context.Context, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, discipline, description, image
		 FROM sports ORDER BY name LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query sports: %w", err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Sport
		if err := rows.Scan(&v.ID, &v.Name, &v.Discipline, &v.Description, &v.Image); err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

// ProductsByCategoryName is the fallback lookup against the generic
// product table when a specialized catalog comes back empty.
func (r *Repository) ProductsByCategoryName(ctx context.Context, text string, n int) ([]domain.RawItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, brand, price, category_id, category_name, image
		 FROM products
		 WHERE category_name ILIKE '%' || $1 || '%'
		 ORDER BY id LIMIT $2`,
		text, n)
	if err != nil {
		return nil, fmt.Errorf("query products by category %q: %w", text, err)
	}
	defer rows.Close()

	var items []domain.RawItem
	for rows.Next() {
		var v domain.Product
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Brand, &v.Price, &v.CategoryID, &v.CategoryName, &v.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
