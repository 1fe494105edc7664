package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/metrics"
	"github.com/nikol804/dotapost/internal/repository"
	"github.com/nikol804/dotapost/internal/slug"
)

// postWriter persists posts with a slug that is free in their effective month.
type postWriter struct {
	tx    repository.Transactor
	posts repository.PostRepository
}

// inTx runs fn in a transaction. A slug collision with a concurrent writer
// aborts the transaction, so fn is run once more from the start; fn must be
// safe to repeat.
func (w postWriter) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := w.tx.WithinTransaction(ctx, fn)
	if errors.Is(err, repository.ErrSlugConflict) {
		metrics.ObserveSlugRetry()
		err = w.tx.WithinTransaction(ctx, fn)
	}
	return err
}

// write allocates post.Slug from base and stores the post. The publication
// transition must already have run so the effective month is final. It must
// be called inside inTx.
func (w postWriter) write(ctx context.Context, post *domain.Post, base string, create bool) error {
	month := post.EffectiveMonth()
	if err := w.posts.LockMonth(ctx, month); err != nil {
		return err
	}

	allocated, err := slug.Allocate(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
		return w.posts.SlugTaken(ctx, month, candidate, post.ID)
	})
	if err != nil {
		return fmt.Errorf("allocate slug: %w", err)
	}
	post.Slug = allocated

	if create {
		err = w.posts.Create(ctx, post)
	} else {
		err = w.posts.Update(ctx, post)
	}
	if err != nil {
		return err
	}

	metrics.ObserveSlugAllocation(base, allocated)
	return nil
}
