package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/authz"
	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/ratelimit"
	"github.com/nikol804/dotapost/internal/repository/memory"
	"github.com/nikol804/dotapost/internal/service"
	"github.com/nikol804/dotapost/internal/token"
	"github.com/nikol804/dotapost/internal/validator"
)

// apiServer wires the full API over the in-memory store.
type apiServer struct {
	router   *gin.Engine
	signer   *token.Signer
	accounts *service.AccountService
}

func newAPIServer(t *testing.T) *apiServer {
	t.Helper()

	store := memory.New()
	v := validator.NewValidator()
	signer := token.NewSigner("test-secret", "dotapost", time.Hour)

	posts := service.NewPostService(store, store.Posts(), store.Users(), store.Comments(), store.Likes(), v)
	comments := service.NewCommentService(store.Posts(), store.Comments(), store.Users(), ratelimit.New(time.Minute, 100), v)
	likes := service.NewLikeService(store.Posts(), store.Likes(), store.Users())
	accounts := service.NewAccountService(store.Users(), store.Posts(), v)
	moderation := service.NewModerationService(store, store.Posts(), store.Comments(), store.Moderation(), store.Users(), authz.SuperuserOnly)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Authenticate(signer))
	RegisterHealthRoutes(router, NewHealthHandler("memory", store))
	RegisterRoutes(router, Handlers{
		Posts:      NewPostHandler(posts, likes),
		Comments:   NewCommentHandler(comments),
		Accounts:   NewAccountHandler(accounts),
		Moderation: NewModerationHandler(moderation),
		Export:     NewExportHandler(moderation),
	})

	return &apiServer{router: router, signer: signer, accounts: accounts}
}

// user creates an account and returns a bearer token for it.
func (s *apiServer) user(t *testing.T, username string, superuser bool) string {
	t.Helper()
	u, err := s.accounts.CreateAccount(context.Background(), domain.AccountInput{
		Username:    username,
		Email:       username + "@example.com",
		IsSuperuser: superuser,
	})
	require.NoError(t, err)

	raw, err := s.signer.Issue(u.ID, "session-"+username, time.Now())
	require.NoError(t, err)
	return raw
}

func (s *apiServer) do(method, target, bearer, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestAPI_PostLifecycle(t *testing.T) {
	api := newAPIServer(t)
	alice := api.user(t, "alice", false)
	bob := api.user(t, "bob", false)

	w := api.do(http.MethodPost, "/api/v1/posts", "", `{"title":"Hello World","body":"x"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/posts", alice,
		`{"title":"Hello World","body":"<p>Hi <a href=\"javascript:alert(1)\">x</a></p>","status":"published"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "hello-world", created.Slug)
	assert.NotContains(t, created.Body, "javascript")
	link := "/api/v1" + created.Permalink

	w = api.do(http.MethodPost, "/api/v1/posts", alice, `{"title":"Hello World","body":"again","status":"published"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"hello-world-2"`)

	w = api.do(http.MethodPut, "/api/v1/posts/"+created.ID, bob, `{"title":"Mine now","body":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPost, link+"/like", bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"likes_count":1}`, w.Body.String())

	w = api.do(http.MethodPost, link+"/comments", bob, `{"body":"Nice <b>post</b>"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, link+"/comments", bob, `{"body":"And another"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w = api.do(http.MethodGet, link, bob, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail domain.PostDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 1, detail.LikesCount)
	assert.True(t, detail.LikedByViewer)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "bob", detail.Comments[0].AuthorUsername)

	w = api.do(http.MethodGet, "/api/v1/feed/interesting", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var feed FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Posts, 2)
	assert.Equal(t, created.ID, feed.Posts[0].ID)
	assert.Equal(t, 1, feed.Posts[0].CommentsCount)

	w = api.do(http.MethodGet, "/api/v1/users/alice/posts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestAPI_DraftsAreInvisible(t *testing.T) {
	api := newAPIServer(t)
	alice := api.user(t, "alice", false)
	bob := api.user(t, "bob", false)

	w := api.do(http.MethodPost, "/api/v1/posts", alice, `{"title":"Secret","body":"wip"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var draft PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	assert.Equal(t, domain.PostStatusDraft, draft.Status)
	link := "/api/v1" + draft.Permalink

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, link, alice, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, link, bob, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, link, "", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, link+"/like", bob, "").Code)
}

func TestAPI_Profile(t *testing.T) {
	api := newAPIServer(t)
	alice := api.user(t, "alice", false)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/profile", "", "").Code)

	w := api.do(http.MethodPut, "/api/v1/profile", alice, `{"display_name":"Alice A.","bio":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/v1/users/alice", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display_name":"Alice A."`)

	w = api.do(http.MethodPut, "/api/v1/profile", alice, `{"avatar_url":"not a url"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_avatar_url")
}

func TestAPI_Moderation(t *testing.T) {
	api := newAPIServer(t)
	alice := api.user(t, "alice", false)
	bob := api.user(t, "bob", false)
	mod := api.user(t, "mod", true)

	w := api.do(http.MethodPost, "/api/v1/posts", alice, `{"title":"Topic","body":"x","status":"published"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var post PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	link := "/api/v1" + post.Permalink

	w = api.do(http.MethodPost, link+"/comments", bob, `{"body":"rude"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var comment domain.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/moderation", "", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/moderation", bob, "").Code)
	assert.Equal(t, http.StatusNotFound,
		api.do(http.MethodPost, "/api/v1/moderation/comments/"+comment.ID+"/hide", bob, "").Code)

	w = api.do(http.MethodPost, "/api/v1/moderation/comments/"+comment.ID+"/hide", mod, `{"reason":"rude"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"action":"hide"`)

	w = api.do(http.MethodGet, link, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comments":[]`)

	w = api.do(http.MethodGet, "/api/v1/moderation", mod, "")
	require.Equal(t, http.StatusOK, w.Code)
	var dashboard domain.ModerationDashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, 1, dashboard.HiddenComments)
	require.Len(t, dashboard.RecentActions, 1)

	w = api.do(http.MethodGet, "/api/v1/moderation/comments", mod, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"post_title":"Topic"`)

	w = api.do(http.MethodGet, "/api/v1/moderation/actions?format=csv&target_type=comment", mod, "")
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,target_type,target_id,action,reason,moderator_id,created_at", lines[0])
	assert.Contains(t, lines[1], ",comment,"+comment.ID+",hide,rude,")

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/moderation/actions", bob, "").Code)
}

func TestAPI_InvalidToken(t *testing.T) {
	api := newAPIServer(t)

	w := api.do(http.MethodGet, "/api/v1/feed", "not-a-token", "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_Health(t *testing.T) {
	api := newAPIServer(t)

	w := api.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"memory":"healthy"`)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/ready", "", "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/live", "", "").Code)
}
