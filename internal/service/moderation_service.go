package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/authz"
	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/metrics"
	"github.com/nikol804/dotapost/internal/repository"
)

const (
	// RecentActionsLimit bounds the audit entries shown on the dashboard.
	RecentActionsLimit = 10

	// streamFlushEvery is how many exported rows are buffered between flushes.
	streamFlushEvery = 100

	exportResource = "moderation_actions"
)

// ModerationService handles moderator decisions. Every decision is written to
// the audit log in the same transaction as the state change it makes, even
// when nothing changed.
type ModerationService struct {
	writer   postWriter
	posts    repository.PostRepository
	comments repository.CommentRepository
	actions  repository.ModerationRepository
	users    repository.UserRepository
	policy   authz.Policy
}

// NewModerationService creates a new ModerationService.
func NewModerationService(
	tx repository.Transactor,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	actions repository.ModerationRepository,
	users repository.UserRepository,
	policy authz.Policy,
) *ModerationService {
	return &ModerationService{
		writer:   postWriter{tx: tx, posts: posts},
		posts:    posts,
		comments: comments,
		actions:  actions,
		users:    users,
		policy:   policy,
	}
}

// Authorize returns the moderator behind id. Users the policy does not allow
// get ErrNotFound so moderation endpoints stay invisible to them.
func (s *ModerationService) Authorize(ctx context.Context, id domain.Identity) (*domain.User, error) {
	user, err := currentUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanModerate(user) {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// Dashboard returns the queue sizes and the latest decisions.
func (s *ModerationService) Dashboard(ctx context.Context, id domain.Identity) (*domain.ModerationDashboard, error) {
	if _, err := s.Authorize(ctx, id); err != nil {
		return nil, err
	}

	var d domain.ModerationDashboard
	var err error
	if d.PendingPosts, err = s.posts.CountDrafts(ctx); err != nil {
		return nil, fmt.Errorf("count drafts: %w", err)
	}
	if d.HiddenComments, err = s.comments.CountHidden(ctx); err != nil {
		return nil, fmt.Errorf("count hidden comments: %w", err)
	}
	d.RecentActions, err = s.actions.List(ctx, domain.ModerationActionFilter{}, repository.Page{Limit: RecentActionsLimit})
	if err != nil {
		return nil, fmt.Errorf("list moderation actions: %w", err)
	}
	return &d, nil
}

// PendingPosts lists drafts, newest first.
func (s *ModerationService) PendingPosts(ctx context.Context, id domain.Identity, page repository.Page) ([]domain.PostSummary, error) {
	if _, err := s.Authorize(ctx, id); err != nil {
		return nil, err
	}
	posts, err := s.posts.ListDrafts(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return posts, nil
}

// HiddenComments lists hidden comments, newest first.
func (s *ModerationService) HiddenComments(ctx context.Context, id domain.Identity, page repository.Page) ([]domain.CommentQueueItem, error) {
	if _, err := s.Authorize(ctx, id); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListHidden(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list hidden comments: %w", err)
	}
	return comments, nil
}

// ApprovePost publishes the post if it is still a draft and logs the decision.
func (s *ModerationService) ApprovePost(ctx context.Context, id domain.Identity, postID, reason string) (*domain.ModerationAction, error) {
	mod, err := s.Authorize(ctx, id)
	if err != nil {
		return nil, err
	}
	if !validID(postID) {
		return nil, domain.ErrNotFound
	}

	var action *domain.ModerationAction
	var published bool
	err = s.writer.inTx(ctx, func(ctx context.Context) error {
		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		if post == nil {
			return domain.ErrNotFound
		}

		published = false
		if !post.IsPublished() {
			now := time.Now().UTC()
			if err := post.Transition(domain.PostStatusPublished, now); err != nil {
				return err
			}
			post.UpdatedAt = now
			if err := s.writer.write(ctx, post, post.Slug, false); err != nil {
				return err
			}
			published = true
		}

		action, err = s.record(ctx, domain.TargetPost, post.ID, domain.ActionApprove, reason, mod)
		return err
	})
	if err != nil {
		return nil, s.wrap("approve post", err)
	}

	if published {
		metrics.ObservePostSaved("approve", true)
	}
	s.logDecision(ctx, action, zap.Bool("published", published))
	return action, nil
}

// RejectPost only logs the decision; the post is left as it is.
func (s *ModerationService) RejectPost(ctx context.Context, id domain.Identity, postID, reason string) (*domain.ModerationAction, error) {
	mod, err := s.Authorize(ctx, id)
	if err != nil {
		return nil, err
	}
	if !validID(postID) {
		return nil, domain.ErrNotFound
	}

	var action *domain.ModerationAction
	err = s.writer.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		if post == nil {
			return domain.ErrNotFound
		}
		action, err = s.record(ctx, domain.TargetPost, post.ID, domain.ActionReject, reason, mod)
		return err
	})
	if err != nil {
		return nil, s.wrap("reject post", err)
	}

	s.logDecision(ctx, action)
	return action, nil
}

// HideComment hides a comment and logs the decision.
func (s *ModerationService) HideComment(ctx context.Context, id domain.Identity, commentID, reason string) (*domain.ModerationAction, error) {
	return s.setCommentStatus(ctx, id, commentID, reason, domain.CommentStatusHidden, domain.ActionHide)
}

// UnhideComment makes a hidden comment visible again and logs the decision.
func (s *ModerationService) UnhideComment(ctx context.Context, id domain.Identity, commentID, reason string) (*domain.ModerationAction, error) {
	return s.setCommentStatus(ctx, id, commentID, reason, domain.CommentStatusVisible, domain.ActionUnhide)
}

func (s *ModerationService) setCommentStatus(
	ctx context.Context,
	id domain.Identity,
	commentID, reason string,
	status domain.CommentStatus,
	kind domain.ModerationActionType,
) (*domain.ModerationAction, error) {
	mod, err := s.Authorize(ctx, id)
	if err != nil {
		return nil, err
	}
	if !validID(commentID) {
		return nil, domain.ErrNotFound
	}

	var action *domain.ModerationAction
	var changed bool
	err = s.writer.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		comment, err := s.comments.GetByID(ctx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if comment == nil {
			return domain.ErrNotFound
		}

		changed, err = comment.SetStatus(status, time.Now())
		if err != nil {
			return err
		}
		if changed {
			if err := s.comments.UpdateStatus(ctx, comment); err != nil {
				return fmt.Errorf("update comment status: %w", err)
			}
		}

		action, err = s.record(ctx, domain.TargetComment, comment.ID, kind, reason, mod)
		return err
	})
	if err != nil {
		return nil, s.wrap(string(kind)+" comment", err)
	}

	s.logDecision(ctx, action, zap.Bool("changed", changed))
	return action, nil
}

func (s *ModerationService) record(
	ctx context.Context,
	target domain.TargetType,
	targetID string,
	kind domain.ModerationActionType,
	reason string,
	mod *domain.User,
) (*domain.ModerationAction, error) {
	action := domain.NewModerationAction(target, targetID, kind, reason, mod.ID, time.Now())
	if err := s.actions.Append(ctx, action); err != nil {
		return nil, fmt.Errorf("append moderation action: %w", err)
	}
	return action, nil
}

func (s *ModerationService) wrap(op string, err error) error {
	if isClientError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *ModerationService) logDecision(ctx context.Context, a *domain.ModerationAction, fields ...zap.Field) {
	metrics.ObserveModerationAction(string(a.TargetType), string(a.Action))
	logger.FromContext(ctx).Info("Moderation action recorded", append([]zap.Field{
		zap.String("action_id", a.ID),
		zap.String("target_type", string(a.TargetType)),
		zap.String("target_id", a.TargetID),
		zap.String("action", string(a.Action)),
		zap.String("moderator_id", a.ModeratorID),
	}, fields...)...)
}

// streamAdapter lets encoding writers write to a StreamWriter.
type streamAdapter struct {
	w StreamWriter
}

func (a streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// StreamActions writes the audit log, oldest first, as CSV or NDJSON and
// returns the number of rows written.
func (s *ModerationService) StreamActions(ctx context.Context, filter domain.ModerationActionFilter, format string, writer StreamWriter) (int, error) {
	if !domain.IsValidFormat(format) {
		return 0, fmt.Errorf("unsupported export format: %s", format)
	}

	metrics.StartStreamingExport(exportResource)
	timer := time.Now()
	var count int
	result := "success"
	defer func() {
		metrics.EndStreamingExport(exportResource, format, result, time.Since(timer).Seconds(), count)
	}()

	out := streamAdapter{w: writer}
	var err error

	if format == domain.FormatCSV {
		cw := csv.NewWriter(out)
		if err := cw.Write([]string{"id", "target_type", "target_id", "action", "reason", "moderator_id", "created_at"}); err != nil {
			result = "error"
			return 0, fmt.Errorf("write header: %w", err)
		}

		err = s.actions.StreamAll(ctx, filter, func(a domain.ModerationAction) error {
			record := []string{
				a.ID,
				string(a.TargetType),
				a.TargetID,
				string(a.Action),
				a.Reason,
				a.ModeratorID,
				a.CreatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
			count++
			if count%streamFlushEvery == 0 {
				cw.Flush()
				writer.Flush()
			}
			return cw.Error()
		})
		cw.Flush()
		if err == nil {
			err = cw.Error()
		}
	} else {
		encoder := json.NewEncoder(out)

		err = s.actions.StreamAll(ctx, filter, func(a domain.ModerationAction) error {
			if err := encoder.Encode(a); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
			count++
			if count%streamFlushEvery == 0 {
				writer.Flush()
			}
			return nil
		})
	}
	writer.Flush()

	if err != nil {
		result = "error"
		return count, fmt.Errorf("stream moderation actions: %w", err)
	}
	return count, nil
}

var _ ModerationServiceInterface = (*ModerationService)(nil)
