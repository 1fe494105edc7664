package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLikeRepository implements LikeRepository using PostgreSQL.
type PostgresLikeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository.
func NewPostgresLikeRepository(pool *pgxpool.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{pool: pool}
}

// Toggle deletes the like if it exists and inserts it otherwise. Concurrent
// inserts for the same pair collapse on the primary key.
func (r *PostgresLikeRepository) Toggle(ctx context.Context, postID, userID string, now time.Time) (bool, error) {
	q := conn(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = q.Exec(ctx, `
		INSERT INTO likes (post_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`, postID, userID, now)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, nil
}

// Count counts all likes of a post.
func (r *PostgresLikeRepository) Count(ctx context.Context, postID string) (int, error) {
	var n int
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}

// Exists reports whether the user likes the post.
func (r *PostgresLikeRepository) Exists(ctx context.Context, postID, userID string) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)
	`, postID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return exists, nil
}
