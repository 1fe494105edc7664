package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
)

// IdentityKey is the context key for the caller's identity.
const IdentityKey = "identity"

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(raw string) (domain.Identity, error)
}

// Authenticate resolves the caller from the Authorization header. Requests
// without a token continue anonymously; a malformed or invalid token is
// rejected with 401.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortUnauthenticated(c)
			return
		}

		id, err := parser.Parse(strings.TrimSpace(raw))
		if err != nil {
			logger.WithRequestID(GetRequestID(c)).Debug("Rejected bearer token", zap.Error(err))
			abortUnauthenticated(c)
			return
		}

		c.Set(IdentityKey, id)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).Authenticated() {
			abortUnauthenticated(c)
			return
		}
		c.Next()
	}
}

// GetIdentity returns the caller's identity; the zero Identity is anonymous.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="dotapost"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
}
