package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/service"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment handles POST /api/v1/posts/:year/:month/:slug/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	link, ok := bindPermalink(c)
	if !ok {
		return
	}

	var in domain.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), middleware.GetIdentity(c), link.Year, link.Month, link.Slug, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment handles DELETE /api/v1/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
