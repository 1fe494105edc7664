package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikol804/dotapost/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO comments (id, post_id, parent_id, author_id, body, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.PostID, c.ParentID, c.AuthorID, c.Body, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, post_id, parent_id, author_id, body, status, created_at, updated_at
		FROM comments
		WHERE id = $1
	`, id).Scan(&c.ID, &c.PostID, &c.ParentID, &c.AuthorID, &c.Body, &c.Status, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// UpdateStatus writes the comment's visibility.
func (r *PostgresCommentRepository) UpdateStatus(ctx context.Context, c *domain.Comment) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE comments SET status = $2, updated_at = $3 WHERE id = $1
	`, c.ID, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a comment; replies go with it through the foreign key.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListThreads returns visible root comments with their visible replies.
func (r *PostgresCommentRepository) ListThreads(ctx context.Context, postID string) ([]domain.CommentThread, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT c.id, c.post_id, c.parent_id, c.author_id, c.body, c.status, c.created_at, c.updated_at,
			u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		LEFT JOIN comments parent ON parent.id = c.parent_id
		WHERE c.post_id = $1
			AND c.status = 'visible'
			AND (c.parent_id IS NULL OR parent.status = 'visible')
		ORDER BY c.created_at, c.id
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var flat []domain.CommentReply
	for rows.Next() {
		var c domain.CommentReply
		if err := rows.Scan(&c.ID, &c.PostID, &c.ParentID, &c.AuthorID, &c.Body, &c.Status,
			&c.CreatedAt, &c.UpdatedAt, &c.AuthorUsername); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		flat = append(flat, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return BuildThreads(flat), nil
}

// ListHidden lists hidden comments for the moderation queue, newest first.
func (r *PostgresCommentRepository) ListHidden(ctx context.Context, page Page) ([]domain.CommentQueueItem, error) {
	limit, offset := limitOffset(page)
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT c.id, c.post_id, c.parent_id, c.author_id, c.body, c.status, c.created_at, c.updated_at,
			u.username, p.title
		FROM comments c
		JOIN users u ON u.id = c.author_id
		JOIN posts p ON p.id = c.post_id
		WHERE c.status = 'hidden'
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query hidden comments: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CommentQueueItem, 0)
	for rows.Next() {
		var c domain.CommentQueueItem
		if err := rows.Scan(&c.ID, &c.PostID, &c.ParentID, &c.AuthorID, &c.Body, &c.Status,
			&c.CreatedAt, &c.UpdatedAt, &c.AuthorUsername, &c.PostTitle); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, c)
	}

	return items, rows.Err()
}

// CountHidden counts hidden comments.
func (r *PostgresCommentRepository) CountHidden(ctx context.Context) (int, error) {
	var n int
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE status = 'hidden'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count hidden comments: %w", err)
	}
	return n, nil
}

// BuildThreads groups comments, ordered oldest first, into root threads.
// Replies whose root is absent are dropped.
func BuildThreads(comments []domain.CommentReply) []domain.CommentThread {
	threads := make([]domain.CommentThread, 0)
	index := make(map[string]int)

	for _, c := range comments {
		if c.ParentID == nil {
			index[c.ID] = len(threads)
			threads = append(threads, domain.CommentThread{
				Comment:        c.Comment,
				AuthorUsername: c.AuthorUsername,
				Replies:        []domain.CommentReply{},
			})
		}
	}
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, c)
		}
	}
	return threads
}
