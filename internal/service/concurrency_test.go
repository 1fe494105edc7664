package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/repository"
	"github.com/nikol804/dotapost/internal/repository/memory"
	"github.com/nikol804/dotapost/internal/service"
	"github.com/nikol804/dotapost/internal/validator"
)

// conflictingPosts fails the first conflicts creates the way a unique index
// does when a concurrent writer takes the slug first.
type conflictingPosts struct {
	*memory.PostRepository
	conflicts int32
	calls     atomic.Int32
}

func (r *conflictingPosts) Create(ctx context.Context, post *domain.Post) error {
	if r.calls.Add(1) <= r.conflicts {
		return repository.ErrSlugConflict
	}
	return r.PostRepository.Create(ctx, post)
}

func TestPostService_Create_SlugConflictRetry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		conflicts int32
		wantErr   bool
		wantCalls int32
	}{
		{name: "one conflict is retried", conflicts: 1, wantCalls: 2},
		{name: "second conflict fails the request", conflicts: 2, wantErr: true, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			alice := f.signIn(t, "alice", false)

			posts := &conflictingPosts{PostRepository: f.store.Posts(), conflicts: tt.conflicts}
			svc := service.NewPostService(f.store, posts, f.store.Users(), f.store.Comments(), f.store.Likes(), validator.NewValidator())

			p, err := svc.Create(ctx, alice, domain.PostInput{Title: "Hello World", Body: "x", Status: domain.PostStatusPublished})
			assert.Equal(t, tt.wantCalls, posts.calls.Load())

			if tt.wantErr {
				require.ErrorIs(t, err, repository.ErrSlugConflict)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hello-world", p.Slug)

			year, month, slug := permalink(p)
			got, err := f.posts.Detail(ctx, alice, year, month, slug)
			require.NoError(t, err)
			assert.Equal(t, p.ID, got.Post.ID)
		})
	}
}

func TestPostService_Create_ConcurrentSameTitle(t *testing.T) {
	const writers = 20
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signIn(t, "alice", false)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		slugs = make(map[string]int)
		errs  []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := f.posts.Create(ctx, alice, domain.PostInput{Title: "Hello World", Body: "x", Status: domain.PostStatusPublished})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			slugs[p.Slug]++
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, slugs, writers)
	assert.Equal(t, 1, slugs["hello-world"])
	assert.Equal(t, 1, slugs["hello-world-20"])
}

func TestLikeService_Toggle_Concurrent(t *testing.T) {
	const toggles = 11
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signIn(t, "alice", false)
	p := f.publish(t, alice, "Likeable")
	year, month, slug := permalink(p)

	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.likes.Toggle(ctx, alice, year, month, slug); err != nil {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Zero(t, failed.Load())
	count, err := f.store.Likes().Count(ctx, p.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, 1)
	// An odd number of serialized toggles ends liked.
	assert.Equal(t, 1, count)
}

func TestCommentService_Create_ConcurrentSameSession(t *testing.T) {
	const submissions = 20
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signIn(t, "alice", false)
	year, month, slug := permalink(f.publish(t, alice, "Post"))

	var (
		wg               sync.WaitGroup
		created, limited atomic.Int32
	)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.comments.Create(ctx, alice, year, month, slug, domain.CommentInput{Body: "first"})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domain.ErrRateLimited):
				limited.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(submissions-1), limited.Load())

	detail, err := f.posts.Detail(ctx, alice, year, month, slug)
	require.NoError(t, err)
	assert.Len(t, detail.Comments, 1)
}
