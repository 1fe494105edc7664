package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/service"
)

// PostHandler handles post, feed and like requests.
type PostHandler struct {
	postService service.PostServiceInterface
	likeService service.LikeServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface, likeService service.LikeServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
		likeService: likeService,
	}
}

// FeedResponse is a page of post summaries.
type FeedResponse struct {
	Feed  domain.Feed          `json:"feed"`
	Posts []domain.PostSummary `json:"posts"`
}

// PostResponse wraps a saved post with its public path.
type PostResponse struct {
	*domain.Post
	Permalink string `json:"permalink"`
}

// Feed returns a handler for GET /feed and its ranked variants.
func (h *PostHandler) Feed(feed domain.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := bindPage(c)
		if !ok {
			return
		}

		posts, err := h.postService.Feed(c.Request.Context(), feed, page)
		if err != nil {
			writeError(c, err)
			return
		}
		if posts == nil {
			posts = []domain.PostSummary{}
		}

		c.JSON(http.StatusOK, FeedResponse{Feed: feed, Posts: posts})
	}
}

// CreatePost handles POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var in domain.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), middleware.GetIdentity(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", "/api/v1"+post.Permalink())
	c.JSON(http.StatusCreated, PostResponse{Post: post, Permalink: post.Permalink()})
}

// UpdatePost handles PUT /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var in domain.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostResponse{Post: post, Permalink: post.Permalink()})
}

// GetPost handles GET /api/v1/posts/:year/:month/:slug
func (h *PostHandler) GetPost(c *gin.Context) {
	link, ok := bindPermalink(c)
	if !ok {
		return
	}

	detail, err := h.postService.Detail(c.Request.Context(), middleware.GetIdentity(c), link.Year, link.Month, link.Slug)
	if err != nil {
		writeError(c, err)
		return
	}
	if detail.Comments == nil {
		detail.Comments = []domain.CommentThread{}
	}

	c.JSON(http.StatusOK, detail)
}

// ToggleLike handles POST /api/v1/posts/:year/:month/:slug/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	link, ok := bindPermalink(c)
	if !ok {
		return
	}

	result, err := h.likeService.Toggle(c.Request.Context(), middleware.GetIdentity(c), link.Year, link.Month, link.Slug)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
