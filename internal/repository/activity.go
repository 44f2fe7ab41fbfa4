package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mercaditolabs/recommendation-service/internal/domain"
)

// Recent returns the user's active events since the given time, newest
// first, capped at max.
func (r *Repository) Recent(ctx context.Context, userID int64, since time.Time, max int) ([]domain.Activity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, type, reference_id, metadata, is_active, created_at
		 FROM activities
		 WHERE user_id = $1 AND is_active AND created_at >= $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID, since, max,
	)
	if err != nil {
		return nil, fmt.Errorf("query activities for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.ReferenceID, &a.Metadata, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return items, nil
}

// HasActivity reports whether the user has any active event of the
// given type for the item.
func (r *Repository) HasActivity(ctx context.Context, userID, referenceID int64, referenceType string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM activities
			WHERE user_id = $1 AND reference_id = $2 AND type = $3 AND is_active
		 )`,
		userID, referenceID, referenceType,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check activity for user %d item %d: %w", userID, referenceID, err)
	}
	return exists, nil
}

// AddActivity records one interaction event. The engine never calls
// this; the HTTP surface does, so the cache can be invalidated.
func (r *Repository) AddActivity(ctx context.Context, a domain.Activity) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO activities (user_id, type, reference_id, metadata, is_active, created_at)
		 VALUES ($1, $2, $3, $4, TRUE, NOW())`,
		a.UserID, a.Type, a.ReferenceID, a.Metadata,
	)
	if err != nil {
		return fmt.Errorf("insert activity for user %d: %w", a.UserID, err)
	}
	return nil
}
