package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/repository"
	"github.com/nikol804/dotapost/internal/validator"
)

// AccountService handles accounts and profiles.
type AccountService struct {
	users     repository.UserRepository
	posts     repository.PostRepository
	validator *validator.Validator
}

// NewAccountService creates a new AccountService.
func NewAccountService(users repository.UserRepository, posts repository.PostRepository, v *validator.Validator) *AccountService {
	return &AccountService{users: users, posts: posts, validator: v}
}

// CreateAccount provisions a user together with its empty profile.
func (s *AccountService) CreateAccount(ctx context.Context, in domain.AccountInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validator.ValidateAccountInput(&in); err != nil {
		return nil, err
	}

	user, profile := domain.NewAccount(in, time.Now())
	if err := s.users.CreateAccount(ctx, user, profile); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, validation.Errors{
				"username": validation.NewError("username_taken", "username already taken"),
			}
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	logger.FromContext(ctx).Info("Account created",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("is_staff", user.IsStaff),
		zap.Bool("is_superuser", user.IsSuperuser),
	)
	return user, nil
}

// GetPublicProfile returns the public view of an active user.
func (s *AccountService) GetPublicProfile(ctx context.Context, username string) (*domain.PublicProfile, error) {
	user, err := s.activeUser(ctx, username)
	if err != nil {
		return nil, err
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return domain.NewPublicProfile(user, profile), nil
}

// ListUserPosts lists a user's published posts, newest first.
func (s *AccountService) ListUserPosts(ctx context.Context, username string, page repository.Page) ([]domain.PostSummary, error) {
	user, err := s.activeUser(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.ListPublishedByAuthor(ctx, user.ID, page)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	return posts, nil
}

// GetOwnProfile returns the caller's profile.
func (s *AccountService) GetOwnProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	user, err := currentUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

// UpdateProfile replaces the caller's editable profile fields. Blank optional
// fields are cleared.
func (s *AccountService) UpdateProfile(ctx context.Context, id domain.Identity, in domain.ProfileInput) (*domain.Profile, error) {
	profile, err := s.GetOwnProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateProfileInput(&in); err != nil {
		return nil, err
	}

	profile.DisplayName = blankToNil(in.DisplayName)
	profile.Bio = strings.TrimSpace(in.Bio)
	profile.AvatarURL = blankToNil(in.AvatarURL)
	profile.Website = blankToNil(in.Website)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	logger.FromContext(ctx).Info("Profile updated", zap.String("user_id", profile.UserID))
	return profile, nil
}

func (s *AccountService) activeUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

var _ AccountServiceInterface = (*AccountService)(nil)
