package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nikol804/dotapost/internal/domain"
)

var (
	// ErrSlugConflict is returned when a write collides with another post's
	// slug in the same month. Callers retry the allocation.
	ErrSlugConflict = errors.New("slug already used in this month")

	// ErrUsernameTaken is returned when creating an account with a used username.
	ErrUsernameTaken = errors.New("username already taken")
)

// Page bounds a listing.
type Page struct {
	Limit  int
	Offset int
}

// Transactor runs fn in a transaction carried by the context passed to it.
// Repository calls made with that context join the transaction. An error
// returned by fn rolls everything back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines methods for account data access.
type UserRepository interface {
	// CreateAccount stores a user together with its profile.
	CreateAccount(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile *domain.Profile) error
}

// PostRepository defines methods for post data access.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// GetByPermalink finds a post by the month its slug is scoped to.
	GetByPermalink(ctx context.Context, month time.Time, slug string) (*domain.Post, error)

	// LockMonth serializes slug allocation for month until the surrounding
	// transaction ends.
	LockMonth(ctx context.Context, month time.Time) error
	// SlugTaken reports whether another post than excludeID uses slug in month.
	SlugTaken(ctx context.Context, month time.Time, slug, excludeID string) (bool, error)

	// ListFeed lists published posts in feed order. Likes are counted from
	// since when it is non-zero.
	ListFeed(ctx context.Context, feed domain.Feed, since time.Time, page Page) ([]domain.PostSummary, error)
	ListPublishedByAuthor(ctx context.Context, authorID string, page Page) ([]domain.PostSummary, error)
	ListDrafts(ctx context.Context, page Page) ([]domain.PostSummary, error)
	CountDrafts(ctx context.Context) (int, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	UpdateStatus(ctx context.Context, comment *domain.Comment) error
	// Delete removes the comment and its replies.
	Delete(ctx context.Context, id string) error
	// ListThreads returns the visible root comments of a post, oldest first,
	// each with its visible replies.
	ListThreads(ctx context.Context, postID string) ([]domain.CommentThread, error)
	ListHidden(ctx context.Context, page Page) ([]domain.CommentQueueItem, error)
	CountHidden(ctx context.Context) (int, error)
}

// LikeRepository defines methods for like data access.
type LikeRepository interface {
	// Toggle removes the user's like if present and adds it otherwise. It
	// reports whether the post is liked afterwards.
	Toggle(ctx context.Context, postID, userID string, now time.Time) (bool, error)
	Count(ctx context.Context, postID string) (int, error)
	Exists(ctx context.Context, postID, userID string) (bool, error)
}

// ModerationRepository defines methods for the moderation audit log.
type ModerationRepository interface {
	Append(ctx context.Context, action *domain.ModerationAction) error
	List(ctx context.Context, filter domain.ModerationActionFilter, page Page) ([]domain.ModerationAction, error)
	// StreamAll streams matching actions oldest first with O(1) memory.
	StreamAll(ctx context.Context, filter domain.ModerationActionFilter, callback func(domain.ModerationAction) error) error
}
