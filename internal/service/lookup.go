package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/repository"
)

// currentUser resolves the signed-in, active user behind id.
func currentUser(ctx context.Context, users repository.UserRepository, id domain.Identity) (*domain.User, error) {
	if !id.Authenticated() || !validID(id.UserID) {
		return nil, domain.ErrUnauthenticated
	}
	u, err := users.GetUser(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil || !u.Active {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}

// optionalUser is currentUser for endpoints open to anonymous callers; it
// returns nil instead of ErrUnauthenticated.
func optionalUser(ctx context.Context, users repository.UserRepository, id domain.Identity) (*domain.User, error) {
	u, err := currentUser(ctx, users, id)
	if err == domain.ErrUnauthenticated {
		return nil, nil
	}
	return u, err
}

func validID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// permalinkMonth turns the year and month of a permalink into a slug month.
func permalinkMonth(year, month int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}

// findByPermalink loads a post by permalink; nil when absent.
func findByPermalink(ctx context.Context, posts repository.PostRepository, year, month int, slug string) (*domain.Post, error) {
	m, ok := permalinkMonth(year, month)
	if !ok {
		return nil, nil
	}
	post, err := posts.GetByPermalink(ctx, m, slug)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// findPublished loads a published post by permalink or fails with ErrNotFound.
func findPublished(ctx context.Context, posts repository.PostRepository, year, month int, slug string) (*domain.Post, error) {
	post, err := findByPermalink(ctx, posts, year, month, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsPublished() {
		return nil, domain.ErrNotFound
	}
	return post, nil
}
