package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealth_Unhealthy(t *testing.T) {
	handler := NewHealthHandler("postgres", stubPinger{err: errors.New("connection refused")})

	router := gin.New()
	RegisterHealthRoutes(router, handler)

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"postgres":"unhealthy"`)

	w = doJSON(router, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(router, http.MethodGet, "/live", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth_ReportsVersion(t *testing.T) {
	handler := NewHealthHandler("postgres", stubPinger{})

	router := gin.New()
	RegisterHealthRoutes(router, handler)

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"`+Version+`"`)
	assert.Contains(t, w.Body.String(), `"time":"`)
}
