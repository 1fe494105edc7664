package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/service"
)

// ModerationHandler handles moderator requests.
type ModerationHandler struct {
	moderationService service.ModerationServiceInterface
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(moderationService service.ModerationServiceInterface) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

// DecisionRequest is the optional body of a moderation decision.
type DecisionRequest struct {
	Reason string `json:"reason"`
}

// decision is one of the ModerationService decision methods.
type decision func(ctx context.Context, id domain.Identity, targetID, reason string) (*domain.ModerationAction, error)

// Dashboard handles GET /api/v1/moderation
func (h *ModerationHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.moderationService.Dashboard(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if dashboard.RecentActions == nil {
		dashboard.RecentActions = []domain.ModerationAction{}
	}

	c.JSON(http.StatusOK, dashboard)
}

// PendingPosts handles GET /api/v1/moderation/posts
func (h *ModerationHandler) PendingPosts(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	posts, err := h.moderationService.PendingPosts(c.Request.Context(), middleware.GetIdentity(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	if posts == nil {
		posts = []domain.PostSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// HiddenComments handles GET /api/v1/moderation/comments
func (h *ModerationHandler) HiddenComments(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	comments, err := h.moderationService.HiddenComments(c.Request.Context(), middleware.GetIdentity(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	if comments == nil {
		comments = []domain.CommentQueueItem{}
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ApprovePost handles POST /api/v1/moderation/posts/:id/approve
func (h *ModerationHandler) ApprovePost(c *gin.Context) {
	h.decide(c, h.moderationService.ApprovePost)
}

// RejectPost handles POST /api/v1/moderation/posts/:id/reject
func (h *ModerationHandler) RejectPost(c *gin.Context) {
	h.decide(c, h.moderationService.RejectPost)
}

// HideComment handles POST /api/v1/moderation/comments/:id/hide
func (h *ModerationHandler) HideComment(c *gin.Context) {
	h.decide(c, h.moderationService.HideComment)
}

// UnhideComment handles POST /api/v1/moderation/comments/:id/unhide
func (h *ModerationHandler) UnhideComment(c *gin.Context) {
	h.decide(c, h.moderationService.UnhideComment)
}

func (h *ModerationHandler) decide(c *gin.Context, fn decision) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	action, err := fn(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, action)
}
