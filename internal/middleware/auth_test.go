package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
)

type stubParser map[string]domain.Identity

func (s stubParser) Parse(raw string) (domain.Identity, error) {
	if id, ok := s[raw]; ok {
		return id, nil
	}
	return domain.Identity{}, errors.New("bad token")
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Authenticate(stubParser{
		"good": {UserID: "u1", SessionID: "s1"},
	}))

	router.GET("/public", func(c *gin.Context) {
		id := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "session": id.Session()})
	})
	router.GET("/private", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"anonymous public", "/public", "", http.StatusOK, `"user_id":""`},
		{"token public", "/public", "Bearer good", http.StatusOK, `"session":"s1"`},
		{"invalid token", "/public", "Bearer bad", http.StatusUnauthorized, "authentication required"},
		{"wrong scheme", "/public", "Basic good", http.StatusUnauthorized, "authentication required"},
		{"empty bearer", "/public", "Bearer ", http.StatusUnauthorized, "authentication required"},
		{"anonymous private", "/private", "", http.StatusUnauthorized, "authentication required"},
		{"token private", "/private", "Bearer good", http.StatusNoContent, ""},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestGetIdentity_ReturnsAnonymousWhenWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Set(middleware.IdentityKey, "u1")

	assert.False(t, middleware.GetIdentity(c).Authenticated())
}
