package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/metrics"
	"github.com/nikol804/dotapost/internal/repository"
)

// LikeResult is the state of a post after a like toggle.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// LikeService handles likes.
type LikeService struct {
	posts repository.PostRepository
	likes repository.LikeRepository
	users repository.UserRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(posts repository.PostRepository, likes repository.LikeRepository, users repository.UserRepository) *LikeService {
	return &LikeService{posts: posts, likes: likes, users: users}
}

// Toggle likes a published post, or takes the like back if the caller
// already liked it.
func (s *LikeService) Toggle(ctx context.Context, id domain.Identity, year, month int, slug string) (*LikeResult, error) {
	user, err := currentUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	post, err := findPublished(ctx, s.posts, year, month, slug)
	if err != nil {
		return nil, err
	}

	liked, err := s.likes.Toggle(ctx, post.ID, user.ID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	count, err := s.likes.Count(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	metrics.ObserveLikeToggle(liked)
	logger.FromContext(ctx).Debug("Like toggled",
		zap.String("post_id", post.ID),
		zap.String("user_id", user.ID),
		zap.Bool("liked", liked),
	)
	return &LikeResult{Liked: liked, LikesCount: count}, nil
}

var _ LikeServiceInterface = (*LikeService)(nil)
