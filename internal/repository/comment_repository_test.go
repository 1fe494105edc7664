package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/repository"
)

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	posts := repository.NewPostgresPostRepository(testDB.Pool)
	comments := repository.NewPostgresCommentRepository(testDB.Pool)
	ctx := context.Background()

	setup := func(t *testing.T) (*domain.User, *domain.Post) {
		testDB.Reset(t)
		alice := testDB.SeedUser(t, "alice")
		p := publishedPost(alice, "discussed", testEpoch)
		require.NoError(t, posts.Create(ctx, p))
		return alice, p
	}

	add := func(t *testing.T, post *domain.Post, author *domain.User, parent *string, status domain.CommentStatus, offset time.Duration) *domain.Comment {
		c := &domain.Comment{
			ID:        uuid.New().String(),
			PostID:    post.ID,
			ParentID:  parent,
			AuthorID:  author.ID,
			Body:      "text",
			Status:    status,
			CreatedAt: testEpoch.Add(offset),
			UpdatedAt: testEpoch.Add(offset),
		}
		require.NoError(t, comments.Create(ctx, c))
		return c
	}

	t.Run("threads hold visible roots and replies", func(t *testing.T) {
		alice, p := setup(t)

		root := add(t, p, alice, nil, domain.CommentStatusVisible, 0)
		reply := add(t, p, alice, &root.ID, domain.CommentStatusVisible, time.Minute)
		add(t, p, alice, &root.ID, domain.CommentStatusHidden, 2*time.Minute)
		hiddenRoot := add(t, p, alice, nil, domain.CommentStatusHidden, 3*time.Minute)
		add(t, p, alice, &hiddenRoot.ID, domain.CommentStatusVisible, 4*time.Minute)

		threads, err := comments.ListThreads(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, threads, 1)
		assert.Equal(t, root.ID, threads[0].ID)
		assert.Equal(t, "alice", threads[0].AuthorUsername)
		require.Len(t, threads[0].Replies, 1)
		assert.Equal(t, reply.ID, threads[0].Replies[0].ID)

		hidden, err := comments.ListHidden(ctx, repository.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, hidden, 2)
		assert.Equal(t, hiddenRoot.ID, hidden[0].ID)
		assert.Equal(t, "discussed", hidden[0].PostTitle)
	})

	t.Run("update status", func(t *testing.T) {
		alice, p := setup(t)
		c := add(t, p, alice, nil, domain.CommentStatusVisible, 0)

		changed, err := c.SetStatus(domain.CommentStatusHidden, testEpoch)
		require.NoError(t, err)
		require.True(t, changed)
		require.NoError(t, comments.UpdateStatus(ctx, c))

		n, err := comments.CountHidden(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("delete cascades to replies", func(t *testing.T) {
		alice, p := setup(t)
		root := add(t, p, alice, nil, domain.CommentStatusVisible, 0)
		reply := add(t, p, alice, &root.ID, domain.CommentStatusVisible, time.Minute)

		require.NoError(t, comments.Delete(ctx, root.ID))

		got, err := comments.GetByID(ctx, reply.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.ErrorIs(t, comments.Delete(ctx, root.ID), domain.ErrNotFound)
	})
}

func TestPostgresModerationRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresModerationRepository(testDB.Pool)
	ctx := context.Background()

	testDB.Reset(t)
	mod := testDB.SeedUser(t, "mod")

	a1 := domain.NewModerationAction(domain.TargetPost, uuid.New().String(), domain.ActionApprove, "", mod.ID, testEpoch)
	a2 := domain.NewModerationAction(domain.TargetComment, uuid.New().String(), domain.ActionHide, "spam", mod.ID, testEpoch.Add(time.Minute))
	require.NoError(t, repo.Append(ctx, a1))
	require.NoError(t, repo.Append(ctx, a2))

	list, err := repo.List(ctx, domain.ModerationActionFilter{}, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a2.ID, list[0].ID)

	var streamed []string
	err = repo.StreamAll(ctx, domain.ModerationActionFilter{TargetType: domain.TargetPost}, func(a domain.ModerationAction) error {
		streamed = append(streamed, a.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{a1.ID}, streamed)
}
