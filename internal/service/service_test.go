package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/authz"
	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/ratelimit"
	"github.com/nikol804/dotapost/internal/repository/memory"
	"github.com/nikol804/dotapost/internal/service"
	"github.com/nikol804/dotapost/internal/validator"
)

// fixture wires every service to one in-memory store.
type fixture struct {
	store      *memory.Store
	posts      *service.PostService
	comments   *service.CommentService
	likes      *service.LikeService
	accounts   *service.AccountService
	moderation *service.ModerationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	v := validator.NewValidator()
	return &fixture{
		store:      store,
		posts:      service.NewPostService(store, store.Posts(), store.Users(), store.Comments(), store.Likes(), v),
		comments:   service.NewCommentService(store.Posts(), store.Comments(), store.Users(), ratelimit.New(ratelimit.DefaultWindow, 100), v),
		likes:      service.NewLikeService(store.Posts(), store.Likes(), store.Users()),
		accounts:   service.NewAccountService(store.Users(), store.Posts(), v),
		moderation: service.NewModerationService(store, store.Posts(), store.Comments(), store.Moderation(), store.Users(), authz.SuperuserOnly),
	}
}

// signIn creates an account and returns the identity its session carries.
func (f *fixture) signIn(t *testing.T, username string, superuser bool) domain.Identity {
	t.Helper()
	u, err := f.accounts.CreateAccount(context.Background(), domain.AccountInput{
		Username:    username,
		Email:       username + "@example.com",
		IsSuperuser: superuser,
	})
	require.NoError(t, err)
	return domain.Identity{UserID: u.ID, SessionID: "session-" + username}
}

func (f *fixture) publish(t *testing.T, id domain.Identity, title string) *domain.Post {
	t.Helper()
	p, err := f.posts.Create(context.Background(), id, domain.PostInput{
		Title:  title,
		Body:   "<p>body</p>",
		Status: domain.PostStatusPublished,
	})
	require.NoError(t, err)
	return p
}

// permalink splits a post's permalink into its lookup parts.
func permalink(p *domain.Post) (int, int, string) {
	m := p.EffectiveMonth()
	return m.Year(), int(m.Month()), p.Slug
}

// requireFieldCode asserts err is a validation error with code on field.
func requireFieldCode(t *testing.T, err error, field, code string) {
	t.Helper()
	var ve validation.Errors
	require.True(t, errors.As(err, &ve), "expected validation errors, got %v", err)
	fieldErr, ok := ve[field]
	require.True(t, ok, "no error for field %s in %v", field, ve)
	var coded validation.Error
	require.True(t, errors.As(fieldErr, &coded))
	require.Equal(t, code, coded.Code())
}

type testStreamWriter struct {
	buf     *bytes.Buffer
	flushes int
}

func (w *testStreamWriter) Write(data []byte) error {
	_, err := w.buf.Write(data)
	return err
}

func (w *testStreamWriter) Flush() {
	w.flushes++
}
