package repository

import (
	"context"
	"fmt"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

// Active returns the user's active favorites, oldest first.
func (r *Repository) Active(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, type, reference_id, is_active
		 FROM favorites
		 WHERE user_id = $1 AND is_active
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.Type, &f.ReferenceID, &f.IsActive); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return items, nil
}
