package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikol804/dotapost/internal/domain"
)

// PostgresModerationRepository implements ModerationRepository using PostgreSQL.
type PostgresModerationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresModerationRepository creates a new PostgresModerationRepository.
func NewPostgresModerationRepository(pool *pgxpool.Pool) *PostgresModerationRepository {
	return &PostgresModerationRepository{pool: pool}
}

// Append inserts an audit record. Records are never updated.
func (r *PostgresModerationRepository) Append(ctx context.Context, a *domain.ModerationAction) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO moderation_actions (id, target_type, target_id, action, reason, moderator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, a.ID, a.TargetType, a.TargetID, a.Action, a.Reason, a.ModeratorID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert moderation action: %w", err)
	}
	return nil
}

// List returns matching actions, newest first.
func (r *PostgresModerationRepository) List(ctx context.Context, filter domain.ModerationActionFilter, page Page) ([]domain.ModerationAction, error) {
	where, args := moderationWhere(filter)
	limit, offset := limitOffset(page)
	args = append(args, limit, offset)

	actions := make([]domain.ModerationAction, 0)
	err := r.query(ctx, fmt.Sprintf(`%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args)), args, func(a domain.ModerationAction) error {
		actions = append(actions, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// StreamAll streams matching actions for export with O(1) memory.
func (r *PostgresModerationRepository) StreamAll(ctx context.Context, filter domain.ModerationActionFilter, callback func(domain.ModerationAction) error) error {
	where, args := moderationWhere(filter)
	err := r.query(ctx, where+` ORDER BY created_at, id`, args, callback)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *PostgresModerationRepository) query(ctx context.Context, tail string, args []any, callback func(domain.ModerationAction) error) error {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT id, target_type, target_id, action, reason, moderator_id, created_at
		FROM moderation_actions
	`+tail, args...)
	if err != nil {
		return fmt.Errorf("query moderation actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.ModerationAction
		if err := rows.Scan(&a.ID, &a.TargetType, &a.TargetID, &a.Action, &a.Reason,
			&a.ModeratorID, &a.CreatedAt); err != nil {
			return fmt.Errorf("scan moderation action: %w", err)
		}

		if err := callback(a); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

func moderationWhere(filter domain.ModerationActionFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.TargetType != "" {
		args = append(args, filter.TargetType)
		conds = append(conds, fmt.Sprintf("target_type = $%d", len(args)))
	}
	if filter.TargetID != "" {
		args = append(args, filter.TargetID)
		conds = append(conds, fmt.Sprintf("target_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
