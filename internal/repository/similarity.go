package repository

import (
	"context"
	"fmt"
)

// SimilarUsers ranks other users by how many active favorites they share
// with the given user. Co-favorite overlap is the simplest similarity
// signal the data supports; the engine treats the strategy as pluggable,
// so a fancier metric can replace this query without touching the
// aggregation around it.
func (r *Repository) SimilarUsers(ctx context.Context, userID int64, limit int) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT other.user_id
		 FROM favorites mine
		 JOIN favorites other
		   ON other.reference_id = mine.reference_id
		  AND other.type = mine.type
		  AND other.user_id <> mine.user_id
		  AND other.is_active
		 WHERE mine.user_id = $1 AND mine.is_active
		 GROUP BY other.user_id
		 ORDER BY COUNT(*) DESC, other.user_id
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query similar users for user %d: %w", userID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan similar user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similar users: %w", err)
	}
	return ids, nil
}
