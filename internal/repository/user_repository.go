package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikol804/dotapost/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// CreateAccount inserts the user and its profile in one transaction.
func (r *PostgresUserRepository) CreateAccount(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	return withinTx(ctx, r.pool, func(ctx context.Context) error {
		q := conn(ctx, r.pool)

		_, err := q.Exec(ctx, `
			INSERT INTO users (id, username, email, is_staff, is_superuser, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, user.ID, user.Username, user.Email, user.IsStaff, user.IsSuperuser, user.Active, user.CreatedAt)
		if err != nil {
			if isUniqueViolation(err, "users_username_key") {
				return ErrUsernameTaken
			}
			return fmt.Errorf("insert user: %w", err)
		}

		_, err = q.Exec(ctx, `
			INSERT INTO profiles (user_id, display_name, bio, avatar_url, website, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, profile.UserID, profile.DisplayName, profile.Bio, profile.AvatarURL, profile.Website,
			profile.CreatedAt, profile.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}

		return nil
	})
}

// GetUser retrieves a user by ID.
func (r *PostgresUserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return r.getUser(ctx, "id", id)
}

// GetUserByUsername retrieves a user by username.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, "username", username)
}

func (r *PostgresUserRepository) getUser(ctx context.Context, column, value string) (*domain.User, error) {
	var u domain.User
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, username, email, is_staff, is_superuser, is_active, created_at
		FROM users
		WHERE `+column+` = $1
	`, value).Scan(&u.ID, &u.Username, &u.Email, &u.IsStaff, &u.IsSuperuser, &u.Active, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return &u, nil
}

// GetProfile retrieves the profile of a user.
func (r *PostgresUserRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT user_id, display_name, bio, avatar_url, website, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.Website, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile updates the editable profile fields.
func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE profiles
		SET display_name = $2, bio = $3, avatar_url = $4, website = $5, updated_at = $6
		WHERE user_id = $1
	`, p.UserID, p.DisplayName, p.Bio, p.AvatarURL, p.Website, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
