package service

import (
	"context"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/repository"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// PostServiceInterface defines post authoring and reading operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// Create stores a new post authored by the caller.
	Create(ctx context.Context, id domain.Identity, in domain.PostInput) (*domain.Post, error)
	// Update edits a post. Only its author may; everyone else gets ErrNotFound.
	Update(ctx context.Context, id domain.Identity, postID string, in domain.PostInput) (*domain.Post, error)
	// Feed lists published posts in the order of feed.
	Feed(ctx context.Context, feed domain.Feed, page repository.Page) ([]domain.PostSummary, error)
	// Detail returns a post with its visible discussion.
	Detail(ctx context.Context, id domain.Identity, year, month int, slug string) (*domain.PostDetail, error)
}

// CommentServiceInterface defines comment operations.
type CommentServiceInterface interface {
	Create(ctx context.Context, id domain.Identity, year, month int, slug string, in domain.CommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, id domain.Identity, commentID string) error
}

// LikeServiceInterface defines like operations.
type LikeServiceInterface interface {
	Toggle(ctx context.Context, id domain.Identity, year, month int, slug string) (*LikeResult, error)
}

// AccountServiceInterface defines account and profile operations.
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, in domain.AccountInput) (*domain.User, error)
	GetPublicProfile(ctx context.Context, username string) (*domain.PublicProfile, error)
	ListUserPosts(ctx context.Context, username string, page repository.Page) ([]domain.PostSummary, error)
	GetOwnProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id domain.Identity, in domain.ProfileInput) (*domain.Profile, error)
}

// ModerationServiceInterface defines moderation operations. Callers the
// policy does not allow get ErrNotFound.
type ModerationServiceInterface interface {
	// Authorize returns the moderator behind id.
	Authorize(ctx context.Context, id domain.Identity) (*domain.User, error)
	Dashboard(ctx context.Context, id domain.Identity) (*domain.ModerationDashboard, error)
	PendingPosts(ctx context.Context, id domain.Identity, page repository.Page) ([]domain.PostSummary, error)
	HiddenComments(ctx context.Context, id domain.Identity, page repository.Page) ([]domain.CommentQueueItem, error)
	ApprovePost(ctx context.Context, id domain.Identity, postID, reason string) (*domain.ModerationAction, error)
	RejectPost(ctx context.Context, id domain.Identity, postID, reason string) (*domain.ModerationAction, error)
	HideComment(ctx context.Context, id domain.Identity, commentID, reason string) (*domain.ModerationAction, error)
	UnhideComment(ctx context.Context, id domain.Identity, commentID, reason string) (*domain.ModerationAction, error)
	// StreamActions writes the audit log to writer. Call Authorize first.
	StreamActions(ctx context.Context, filter domain.ModerationActionFilter, format string, writer StreamWriter) (int, error)
}
