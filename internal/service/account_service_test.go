package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	u, err := f.accounts.CreateAccount(ctx, domain.AccountInput{Username: " alice ", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	profile, err := f.store.Users().GetProfile(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, profile, "every account gets a profile")

	_, err = f.accounts.CreateAccount(ctx, domain.AccountInput{Username: "alice"})
	requireFieldCode(t, err, "username", "username_taken")

	_, err = f.accounts.CreateAccount(ctx, domain.AccountInput{Username: "no spaces allowed"})
	requireFieldCode(t, err, "username", "invalid_username")
}

func TestAccountService_Profiles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signIn(t, "alice", false)

	public, err := f.accounts.GetPublicProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", public.DisplayName, "display name falls back to the username")

	updated, err := f.accounts.UpdateProfile(ctx, alice, domain.ProfileInput{
		DisplayName: strPtr("Alice A."),
		Bio:         "  writes  ",
		Website:     strPtr("https://alice.example.com"),
		AvatarURL:   strPtr(" "),
	})
	require.NoError(t, err)
	assert.Equal(t, "writes", updated.Bio)
	assert.Nil(t, updated.AvatarURL, "blank values clear the field")

	own, err := f.accounts.GetOwnProfile(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, own.DisplayName)
	assert.Equal(t, "Alice A.", *own.DisplayName)

	public, err = f.accounts.GetPublicProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", public.DisplayName)

	_, err = f.accounts.UpdateProfile(ctx, alice, domain.ProfileInput{Website: strPtr("alice")})
	requireFieldCode(t, err, "website", "invalid_website")

	_, err = f.accounts.GetOwnProfile(ctx, domain.Identity{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.accounts.GetPublicProfile(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountService_ListUserPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.signIn(t, "alice", false)
	f.signIn(t, "bob", false)

	f.publish(t, alice, "One")
	_, err := f.posts.Create(ctx, alice, domain.PostInput{Title: "Draft", Body: "x"})
	require.NoError(t, err)

	posts, err := f.accounts.ListUserPosts(ctx, "alice", repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 1, "drafts are not listed")
	assert.Equal(t, "One", posts[0].Title)

	posts, err = f.accounts.ListUserPosts(ctx, "bob", repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)

	_, err = f.accounts.ListUserPosts(ctx, "ghost", repository.Page{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
