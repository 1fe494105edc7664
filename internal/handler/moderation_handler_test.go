package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/mocks"
	"github.com/nikol804/dotapost/internal/repository"
)

func moderationRouter(t *testing.T) (*gin.Engine, *mocks.MockModerationServiceInterface) {
	mockService := mocks.NewMockModerationServiceInterface(t)
	handler := NewModerationHandler(mockService)

	router := gin.New()
	router.Use(asUser(moderator))
	router.GET("/api/v1/moderation", handler.Dashboard)
	router.GET("/api/v1/moderation/posts", handler.PendingPosts)
	router.GET("/api/v1/moderation/comments", handler.HiddenComments)
	router.POST("/api/v1/moderation/posts/:id/approve", handler.ApprovePost)
	router.POST("/api/v1/moderation/posts/:id/reject", handler.RejectPost)
	router.POST("/api/v1/moderation/comments/:id/hide", handler.HideComment)
	router.POST("/api/v1/moderation/comments/:id/unhide", handler.UnhideComment)
	return router, mockService
}

func TestModerationDashboard(t *testing.T) {
	router, mockService := moderationRouter(t)

	mockService.EXPECT().Dashboard(mock.Anything, moderator).
		Return(&domain.ModerationDashboard{PendingPosts: 3, HiddenComments: 1}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/moderation", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pending_posts":3,"hidden_comments":1,"recent_actions":[]}`, w.Body.String())
}

func TestModerationQueues(t *testing.T) {
	router, mockService := moderationRouter(t)

	mockService.EXPECT().PendingPosts(mock.Anything, moderator, repository.Page{Limit: DefaultPageSize}).
		Return([]domain.PostSummary{{Post: *samplePost(domain.PostStatusDraft), AuthorUsername: "alice"}}, nil)
	mockService.EXPECT().HiddenComments(mock.Anything, moderator, repository.Page{Limit: 2, Offset: 4}).
		Return(nil, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/moderation/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"author_username":"alice"`)

	w = doJSON(router, http.MethodGet, "/api/v1/moderation/comments?limit=2&offset=4", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"comments":[]}`, w.Body.String())
}

func TestModerationDecisions(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		reason string
		expect func(m *mocks.MockModerationServiceInterface, reason string, a *domain.ModerationAction)
	}{
		{
			name: "approve without body",
			path: "/api/v1/moderation/posts/p1/approve",
			expect: func(m *mocks.MockModerationServiceInterface, reason string, a *domain.ModerationAction) {
				m.EXPECT().ApprovePost(mock.Anything, moderator, "p1", reason).Return(a, nil)
			},
		},
		{
			name:   "reject with reason",
			path:   "/api/v1/moderation/posts/p1/reject",
			body:   `{"reason":"off topic"}`,
			reason: "off topic",
			expect: func(m *mocks.MockModerationServiceInterface, reason string, a *domain.ModerationAction) {
				m.EXPECT().RejectPost(mock.Anything, moderator, "p1", reason).Return(a, nil)
			},
		},
		{
			name:   "hide",
			path:   "/api/v1/moderation/comments/c1/hide",
			body:   `{"reason":"spam"}`,
			reason: "spam",
			expect: func(m *mocks.MockModerationServiceInterface, reason string, a *domain.ModerationAction) {
				m.EXPECT().HideComment(mock.Anything, moderator, "c1", reason).Return(a, nil)
			},
		},
		{
			name: "unhide",
			path: "/api/v1/moderation/comments/c1/unhide",
			expect: func(m *mocks.MockModerationServiceInterface, reason string, a *domain.ModerationAction) {
				m.EXPECT().UnhideComment(mock.Anything, moderator, "c1", reason).Return(a, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := moderationRouter(t)
			action := &domain.ModerationAction{ID: "a1", Reason: tt.reason}
			tt.expect(mockService, tt.reason, action)

			w := doJSON(router, http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"id":"a1"`)
		})
	}
}

func TestModerationDecision_MalformedBody(t *testing.T) {
	router, _ := moderationRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/moderation/posts/p1/approve", `{"reason":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestModerationDecision_NotModerator(t *testing.T) {
	router, mockService := moderationRouter(t)

	mockService.EXPECT().HideComment(mock.Anything, moderator, "c1", "").Return(nil, domain.ErrNotFound)

	w := doJSON(router, http.MethodPost, "/api/v1/moderation/comments/c1/hide", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}
