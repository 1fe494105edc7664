package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikol804/dotapost/internal/domain"
)

const postColumns = `p.id, p.title, p.slug, p.summary, p.body, p.cover_url, p.author_id,
	p.status, p.published_at, p.created_at, p.updated_at`

const postSlugConstraint = "posts_slug_month_slug_key"

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// Create inserts a post. The slug month is derived from the post's state.
func (r *PostgresPostRepository) Create(ctx context.Context, p *domain.Post) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO posts (id, title, slug, slug_month, summary, body, cover_url, author_id,
			status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, p.ID, p.Title, p.Slug, p.EffectiveMonth(), p.Summary, p.Body, p.CoverURL, p.AuthorID,
		p.Status, p.PublishedAt, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, postSlugConstraint) {
			return ErrSlugConflict
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// Update writes every mutable column of a post.
func (r *PostgresPostRepository) Update(ctx context.Context, p *domain.Post) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, slug_month = $4, summary = $5, body = $6, cover_url = $7,
			status = $8, published_at = $9, updated_at = $10
		WHERE id = $1
	`, p.ID, p.Title, p.Slug, p.EffectiveMonth(), p.Summary, p.Body, p.CoverURL,
		p.Status, p.PublishedAt, p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, postSlugConstraint) {
			return ErrSlugConflict
		}
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID retrieves a post by ID.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id)
	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// GetByPermalink retrieves a post by slug month and slug.
func (r *PostgresPostRepository) GetByPermalink(ctx context.Context, month time.Time, slug string) (*domain.Post, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		WHERE p.slug_month = $1 AND p.slug = $2
	`, domain.MonthOf(month), slug)
	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post by permalink: %w", err)
	}
	return post, nil
}

// LockMonth takes a transaction-scoped advisory lock for the month. It must
// run inside a transaction.
func (r *PostgresPostRepository) LockMonth(ctx context.Context, month time.Time) error {
	key := "posts:" + domain.MonthOf(month).Format("2006-01")
	if _, err := conn(ctx, r.pool).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("lock slug month: %w", err)
	}
	return nil
}

// SlugTaken reports whether another post uses slug in month.
func (r *PostgresPostRepository) SlugTaken(ctx context.Context, month time.Time, slug, excludeID string) (bool, error) {
	var exists bool
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM posts
			WHERE slug_month = $1 AND slug = $2 AND ($3 = '' OR id::text <> $3)
		)
	`, domain.MonthOf(month), slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// ListFeed lists published posts with their visible comment and like counts.
func (r *PostgresPostRepository) ListFeed(ctx context.Context, feed domain.Feed, since time.Time, page Page) ([]domain.PostSummary, error) {
	var sinceArg *time.Time
	if !since.IsZero() {
		sinceArg = &since
	}

	order := "p.published_at DESC, p.created_at DESC"
	if feed.RankedByLikes() {
		order = "likes_count DESC, p.published_at DESC"
	}

	limit, offset := limitOffset(page)
	return r.listSummaries(ctx, `
		WHERE p.status = 'published'
		ORDER BY `+order+`
		LIMIT $2 OFFSET $3
	`, sinceArg, limit, offset)
}

// ListPublishedByAuthor lists an author's published posts, newest first.
func (r *PostgresPostRepository) ListPublishedByAuthor(ctx context.Context, authorID string, page Page) ([]domain.PostSummary, error) {
	limit, offset := limitOffset(page)
	return r.listSummaries(ctx, `
		WHERE p.status = 'published' AND p.author_id = $4
		ORDER BY p.published_at DESC
		LIMIT $2 OFFSET $3
	`, nil, limit, offset, authorID)
}

// ListDrafts lists drafts awaiting moderation, newest first.
func (r *PostgresPostRepository) ListDrafts(ctx context.Context, page Page) ([]domain.PostSummary, error) {
	limit, offset := limitOffset(page)
	return r.listSummaries(ctx, `
		WHERE p.status = 'draft'
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, nil, limit, offset)
}

// CountDrafts counts posts in draft state.
func (r *PostgresPostRepository) CountDrafts(ctx context.Context) (int, error) {
	var n int
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE status = 'draft'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count drafts: %w", err)
	}
	return n, nil
}

// listSummaries runs a summary query. $1 is the like window start (nullable),
// the tail supplies the WHERE/ORDER/LIMIT clauses.
func (r *PostgresPostRepository) listSummaries(ctx context.Context, tail string, since *time.Time, args ...any) ([]domain.PostSummary, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+postColumns+`, u.username,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id AND c.status = 'visible') AS comments_count,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id
				AND ($1::timestamptz IS NULL OR l.created_at >= $1)) AS likes_count
		FROM posts p
		JOIN users u ON u.id = p.author_id
	`+tail, append([]any{since}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.PostSummary, 0)
	for rows.Next() {
		var s domain.PostSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Summary, &s.Body, &s.CoverURL, &s.AuthorID,
			&s.Status, &s.PublishedAt, &s.CreatedAt, &s.UpdatedAt,
			&s.AuthorUsername, &s.CommentsCount, &s.LikesCount); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body, &p.CoverURL, &p.AuthorID,
		&p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
