package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/mocks"
	"github.com/nikol804/dotapost/internal/service"
)

var moderator = domain.Identity{UserID: "b3b0d1f4-6a55-4f0e-8d55-0d4c7e6a9f02", SessionID: "mod"}

func exportRouter(t *testing.T) (*gin.Engine, *mocks.MockModerationServiceInterface) {
	mockService := mocks.NewMockModerationServiceInterface(t)
	handler := NewExportHandler(mockService)

	router := gin.New()
	router.Use(asUser(moderator))
	router.GET("/api/v1/moderation/actions", handler.StreamActions)
	return router, mockService
}

func TestStreamActions_NDJSON(t *testing.T) {
	router, mockService := exportRouter(t)

	mockService.EXPECT().Authorize(mock.Anything, moderator).Return(&domain.User{ID: moderator.UserID}, nil)
	mockService.EXPECT().
		StreamActions(mock.Anything, domain.ModerationActionFilter{}, "ndjson", mock.AnythingOfType("*handler.ginStreamWriter")).
		Run(func(ctx context.Context, filter domain.ModerationActionFilter, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":"a1","target_type":"post","action":"approve"}` + "\n"))
			_ = writer.Write([]byte(`{"id":"a2","target_type":"comment","action":"hide"}` + "\n"))
			writer.Flush()
		}).
		Return(2, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/moderation/actions", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/x-ndjson")
	require.Contains(t, w.Header().Get("Content-Disposition"), ".ndjson")
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var action map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &action), "line %d should be valid JSON", i)
		require.Contains(t, action, "action")
	}
}

func TestStreamActions_CSVWithFilter(t *testing.T) {
	router, mockService := exportRouter(t)

	target := "0d9f4d8a-7c39-4f4e-9b9e-2f8f1b0d3e21"
	mockService.EXPECT().Authorize(mock.Anything, moderator).Return(&domain.User{ID: moderator.UserID}, nil)
	mockService.EXPECT().
		StreamActions(mock.Anything, domain.ModerationActionFilter{TargetType: domain.TargetPost, TargetID: target}, "csv", mock.Anything).
		Run(func(ctx context.Context, filter domain.ModerationActionFilter, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte("id,target_type,target_id,action,reason,moderator_id,created_at\n"))
			_ = writer.Write([]byte("a1,post," + target + ",approve,,m1,2026-10-01T12:00:00Z\n"))
		}).
		Return(1, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/moderation/actions?format=csv&target_type=post&target_id="+target, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "id,target_type"))
}

func TestStreamActions_InvalidQuery(t *testing.T) {
	for _, query := range []string{"?format=xml", "?target_type=user", "?target_id=not-a-uuid"} {
		t.Run(query, func(t *testing.T) {
			router, mockService := exportRouter(t)
			mockService.EXPECT().Authorize(mock.Anything, moderator).Return(&domain.User{ID: moderator.UserID}, nil)

			w := doJSON(router, http.MethodGet, "/api/v1/moderation/actions"+query, "")

			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestStreamActions_NotModerator(t *testing.T) {
	router, mockService := exportRouter(t)
	mockService.EXPECT().Authorize(mock.Anything, moderator).Return(nil, domain.ErrNotFound)

	// The bad format is never looked at.
	w := doJSON(router, http.MethodGet, "/api/v1/moderation/actions?format=xml", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotContains(t, w.Header().Get("Content-Type"), "ndjson")
}

func TestStreamActions_ErrorAfterHeaders(t *testing.T) {
	router, mockService := exportRouter(t)

	mockService.EXPECT().Authorize(mock.Anything, moderator).Return(&domain.User{ID: moderator.UserID}, nil)
	mockService.EXPECT().
		StreamActions(mock.Anything, mock.Anything, "ndjson", mock.Anything).
		Run(func(ctx context.Context, filter domain.ModerationActionFilter, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":"a1"}` + "\n"))
		}).
		Return(1, errors.New("connection reset"))

	w := doJSON(router, http.MethodGet, "/api/v1/moderation/actions", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"id":"a1"}`, strings.TrimSpace(w.Body.String()))
}

func TestStreamActions_OutlastsServerWriteTimeout(t *testing.T) {
	router, mockService := exportRouter(t)

	mockService.EXPECT().Authorize(mock.Anything, moderator).Return(&domain.User{ID: moderator.UserID}, nil)
	mockService.EXPECT().
		StreamActions(mock.Anything, mock.Anything, "ndjson", mock.Anything).
		Run(func(ctx context.Context, filter domain.ModerationActionFilter, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":"a1"}` + "\n"))
			writer.Flush()
			time.Sleep(300 * time.Millisecond)
			_ = writer.Write([]byte(`{"id":"a2"}` + "\n"))
		}).
		Return(2, nil)

	srv := httptest.NewUnstartedServer(router)
	srv.Config.WriteTimeout = 100 * time.Millisecond
	srv.Start()
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/v1/moderation/actions")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `{"id":"a1"}`+"\n"+`{"id":"a2"}`+"\n", string(body))
}
