package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/authz"
	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/metrics"
	"github.com/nikol804/dotapost/internal/ratelimit"
	"github.com/nikol804/dotapost/internal/repository"
	"github.com/nikol804/dotapost/internal/sanitize"
	"github.com/nikol804/dotapost/internal/validator"
)

// RateLimitedError is returned when the caller comments too often.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return domain.ErrRateLimited.Error()
}

// Unwrap lets errors.Is match domain.ErrRateLimited.
func (e *RateLimitedError) Unwrap() error {
	return domain.ErrRateLimited
}

// CommentService handles comment submission and removal.
type CommentService struct {
	posts     repository.PostRepository
	comments  repository.CommentRepository
	users     repository.UserRepository
	limiter   *ratelimit.Limiter
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
	limiter *ratelimit.Limiter,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		posts:     posts,
		comments:  comments,
		users:     users,
		limiter:   limiter,
		validator: v,
	}
}

func parentError(code, msg string) error {
	return validation.Errors{"parent": validation.NewError(code, msg)}
}

// Create adds a comment, or a reply when in.ParentID is set, to a published
// post. Submissions are throttled per user and session.
func (s *CommentService) Create(ctx context.Context, id domain.Identity, year, month int, slug string, in domain.CommentInput) (*domain.Comment, error) {
	author, err := currentUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	post, err := findPublished(ctx, s.posts, year, month, slug)
	if err != nil {
		return nil, err
	}

	// The window is reserved up front so concurrent submissions from one
	// session cannot both get through; it is released if nothing is stored.
	if !s.limiter.Reserve(id) {
		metrics.ObserveComment(metrics.CommentRateLimited)
		return nil, &RateLimitedError{RetryAfter: s.limiter.RetryAfter(id)}
	}

	comment, err := s.create(ctx, author, post, in)
	if err != nil {
		s.limiter.Release(id)
		return nil, err
	}

	metrics.ObserveComment(metrics.CommentCreated)
	logger.FromContext(ctx).Info("Comment created",
		zap.String("comment_id", comment.ID),
		zap.String("post_id", post.ID),
		zap.String("author_id", author.ID),
		zap.Bool("reply", comment.IsReply()),
	)
	return comment, nil
}

func (s *CommentService) create(ctx context.Context, author *domain.User, post *domain.Post, in domain.CommentInput) (*domain.Comment, error) {
	if err := s.validator.ValidateCommentBody(in.Body); err != nil {
		metrics.ObserveComment(metrics.CommentRejected)
		return nil, err
	}
	body := sanitize.HTML(strings.TrimSpace(in.Body))
	if strings.TrimSpace(body) == "" {
		metrics.ObserveComment(metrics.CommentRejected)
		return nil, validation.Errors{
			"body": validation.NewError("body_empty", "comment has no content after cleaning"),
		}
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		PostID:    post.ID,
		AuthorID:  author.ID,
		Body:      body,
		Status:    domain.CommentStatusVisible,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.ParentID != nil && *in.ParentID != "" {
		if err := s.attachParent(ctx, comment, *in.ParentID); err != nil {
			metrics.ObserveComment(metrics.CommentRejected)
			return nil, err
		}
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// attachParent makes comment a reply to parentID. The parent must be a
// visible top-level comment of the same post.
func (s *CommentService) attachParent(ctx context.Context, comment *domain.Comment, parentID string) error {
	if !validID(parentID) {
		return parentError("invalid_parent_reference", "parent reference is malformed")
	}

	parent, err := s.comments.GetByID(ctx, parentID)
	if err != nil {
		return fmt.Errorf("get parent comment: %w", err)
	}
	if parent == nil || parent.PostID != comment.PostID || !parent.IsVisible() {
		return parentError("parent_not_found", "parent comment not found")
	}

	if err := comment.ReplyTo(parent); err != nil {
		return parentError("reply_depth_exceeded", "replies to replies are not allowed")
	}
	return nil
}

// Delete removes the caller's own comment together with its replies. Other
// people's comments do not exist for the caller.
func (s *CommentService) Delete(ctx context.Context, id domain.Identity, commentID string) error {
	user, err := currentUser(ctx, s.users, id)
	if err != nil {
		return err
	}
	if !validID(commentID) {
		return domain.ErrNotFound
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if comment == nil || !authz.CanDeleteComment(user, comment) {
		return domain.ErrNotFound
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	metrics.ObserveComment(metrics.CommentDeleted)
	logger.FromContext(ctx).Info("Comment deleted",
		zap.String("comment_id", comment.ID),
		zap.String("post_id", comment.PostID),
	)
	return nil
}

var _ CommentServiceInterface = (*CommentService)(nil)
