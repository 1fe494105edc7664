package service

import (
	"context"
	"errors"
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
	"github.com/nikol804/dotapost/internal/repository"
	"github.com/nikol804/dotapost/internal/sanitize"
	"github.com/nikol804/dotapost/internal/slug"
	"github.com/nikol804/dotapost/internal/validator"
)

// PostService handles post authoring, feeds and post detail.
type PostService struct {
	writer    postWriter
	posts     repository.PostRepository
	users     repository.UserRepository
	comments  repository.CommentRepository
	likes     repository.LikeRepository
	validator *validator.Validator
}

// NewPostService creates a new PostService.
func NewPostService(
	tx repository.Transactor,
	posts repository.PostRepository,
	users repository.UserRepository,
	comments repository.CommentRepository,
	likes repository.LikeRepository,
	v *validator.Validator,
) *PostService {
	return &PostService{
		writer:    postWriter{tx: tx, posts: posts},
		posts:     posts,
		users:     users,
		comments:  comments,
		likes:     likes,
		validator: v,
	}
}

// Create stores a new post authored by the caller. The slug comes from
// in.Slug when given, else from the title, and is made unique in the post's
// effective month.
func (s *PostService) Create(ctx context.Context, id domain.Identity, in domain.PostInput) (*domain.Post, error) {
	author, err := currentUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePostInput(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:        uuid.New().String(),
		AuthorID:  author.ID,
		CreatedAt: now,
	}
	applyPostInput(post, in, now)
	if err := post.Transition(in.Status, now); err != nil {
		return nil, transitionError(err)
	}

	source := in.Slug
	if source == "" {
		source = in.Title
	}
	base := slug.Base(source)

	err = s.writer.inTx(ctx, func(ctx context.Context) error {
		return s.writer.write(ctx, post, base, true)
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.ObservePostSaved("create", post.IsPublished())
	logger.FromContext(ctx).Info("Post created",
		zap.String("post_id", post.ID),
		zap.String("author_id", author.ID),
		zap.String("status", string(post.Status)),
		zap.String("permalink", post.Permalink()),
	)
	return post, nil
}

// Update edits a post. Only its author may; for everyone else the post does
// not exist. An existing slug is kept unless in.Slug replaces it, but it is
// re-checked against the month the post lands in.
func (s *PostService) Update(ctx context.Context, id domain.Identity, postID string, in domain.PostInput) (*domain.Post, error) {
	editor, err := currentUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if !validID(postID) {
		return nil, domain.ErrNotFound
	}
	if err := s.validator.ValidatePostInput(&in); err != nil {
		return nil, err
	}

	var post *domain.Post
	var publishedNow bool
	now := time.Now().UTC()

	err = s.writer.inTx(ctx, func(ctx context.Context) error {
		p, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		if p == nil || !authz.CanEditPost(editor, p) {
			return domain.ErrNotFound
		}
		post = p

		wasPublished := post.IsPublished()
		applyPostInput(post, in, now)
		if err := post.Transition(in.Status, now); err != nil {
			return transitionError(err)
		}
		publishedNow = !wasPublished && post.IsPublished()

		base := post.Slug
		if in.Slug != "" {
			base = slug.Base(in.Slug)
		}
		return s.writer.write(ctx, post, base, false)
	})
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	metrics.ObservePostSaved("update", publishedNow)
	logger.FromContext(ctx).Info("Post updated",
		zap.String("post_id", post.ID),
		zap.Bool("published_now", publishedNow),
		zap.String("permalink", post.Permalink()),
	)
	return post, nil
}

// Feed lists published posts in the order of feed.
func (s *PostService) Feed(ctx context.Context, feed domain.Feed, page repository.Page) ([]domain.PostSummary, error) {
	if !domain.IsValidFeed(feed) {
		return nil, domain.ErrNotFound
	}

	var since time.Time
	if w := feed.Window(); w > 0 {
		since = time.Now().UTC().Add(-w)
	}

	posts, err := s.posts.ListFeed(ctx, feed, since, page)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	return posts, nil
}

// Detail returns a post with its visible comment threads. Drafts are only
// visible to their author.
func (s *PostService) Detail(ctx context.Context, id domain.Identity, year, month int, slugStr string) (*domain.PostDetail, error) {
	post, err := findByPermalink(ctx, s.posts, year, month, slugStr)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}

	viewer, err := optionalUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanViewPost(viewer, post) {
		return nil, domain.ErrNotFound
	}

	detail := &domain.PostDetail{Post: *post}

	author, err := s.users.GetUser(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author != nil {
		detail.AuthorUsername = author.Username
	}

	if detail.Comments, err = s.comments.ListThreads(ctx, post.ID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if detail.LikesCount, err = s.likes.Count(ctx, post.ID); err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	if viewer != nil {
		if detail.LikedByViewer, err = s.likes.Exists(ctx, post.ID, viewer.ID); err != nil {
			return nil, fmt.Errorf("check like: %w", err)
		}
	}

	return detail, nil
}

// applyPostInput copies the editable fields, sanitizing the body.
func applyPostInput(post *domain.Post, in domain.PostInput, now time.Time) {
	post.Title = strings.TrimSpace(in.Title)
	post.Summary = strings.TrimSpace(in.Summary)
	post.Body = sanitize.HTML(in.Body)
	post.CoverURL = in.CoverURL
	post.UpdatedAt = now
}

func transitionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return validation.Errors{
			"status": validation.NewError("invalid_status_transition", "a published post cannot go back to draft"),
		}
	case errors.Is(err, domain.ErrInvalidStatus):
		return validation.Errors{
			"status": validation.NewError("invalid_status", "status must be draft or published"),
		}
	}
	return err
}

// isClientError reports whether err is one of the errors returned to the
// caller unchanged.
func isClientError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrUnauthenticated) ||
		errors.Is(err, domain.ErrRateLimited)
}

var _ PostServiceInterface = (*PostService)(nil)
