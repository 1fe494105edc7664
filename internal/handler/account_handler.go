package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/service"
)

// AccountHandler handles public profile and own-profile requests.
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// UserPostsResponse lists a user's published posts.
type UserPostsResponse struct {
	Username string               `json:"username"`
	Posts    []domain.PostSummary `json:"posts"`
}

// GetUser handles GET /api/v1/users/:username
func (h *AccountHandler) GetUser(c *gin.Context) {
	profile, err := h.accountService.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListUserPosts handles GET /api/v1/users/:username/posts
func (h *AccountHandler) ListUserPosts(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	username := c.Param("username")
	posts, err := h.accountService.ListUserPosts(c.Request.Context(), username, page)
	if err != nil {
		writeError(c, err)
		return
	}
	if posts == nil {
		posts = []domain.PostSummary{}
	}

	c.JSON(http.StatusOK, UserPostsResponse{Username: username, Posts: posts})
}

// GetProfile handles GET /api/v1/profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.accountService.GetOwnProfile(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var in domain.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.accountService.UpdateProfile(c.Request.Context(), middleware.GetIdentity(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
