package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/middleware"
)

// Handlers groups the API handlers mounted by RegisterRoutes.
type Handlers struct {
	Posts      *PostHandler
	Comments   *CommentHandler
	Accounts   *AccountHandler
	Moderation *ModerationHandler
	Export     *ExportHandler
}

// RegisterRoutes mounts the public API under /api/v1.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	auth := middleware.RequireAuth()

	v1 := router.Group("/api/v1")
	{
		feed := v1.Group("/feed")
		{
			feed.GET("", h.Posts.Feed(domain.FeedLatest))
			feed.GET("/interesting", h.Posts.Feed(domain.FeedInteresting))
			feed.GET("/top/week", h.Posts.Feed(domain.FeedTopWeek))
			feed.GET("/top/month", h.Posts.Feed(domain.FeedTopMonth))
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", auth, h.Posts.CreatePost)
			posts.PUT("/:id", auth, h.Posts.UpdatePost)
			posts.GET("/:year/:month/:slug", h.Posts.GetPost)
			posts.POST("/:year/:month/:slug/like", auth, h.Posts.ToggleLike)
			posts.POST("/:year/:month/:slug/comments", auth, h.Comments.CreateComment)
		}

		v1.DELETE("/comments/:id", auth, h.Comments.DeleteComment)

		users := v1.Group("/users")
		{
			users.GET("/:username", h.Accounts.GetUser)
			users.GET("/:username/posts", h.Accounts.ListUserPosts)
		}

		profile := v1.Group("/profile", auth)
		{
			profile.GET("", h.Accounts.GetProfile)
			profile.PUT("", h.Accounts.UpdateProfile)
		}

		moderation := v1.Group("/moderation", auth)
		{
			moderation.GET("", h.Moderation.Dashboard)
			moderation.GET("/posts", h.Moderation.PendingPosts)
			moderation.GET("/comments", h.Moderation.HiddenComments)
			moderation.POST("/posts/:id/approve", h.Moderation.ApprovePost)
			moderation.POST("/posts/:id/reject", h.Moderation.RejectPost)
			moderation.POST("/comments/:id/hide", h.Moderation.HideComment)
			moderation.POST("/comments/:id/unhide", h.Moderation.UnhideComment)
			moderation.GET("/actions", h.Export.StreamActions)
		}
	}
}

// RegisterHealthRoutes mounts the probe endpoints.
func RegisterHealthRoutes(router gin.IRouter, h *HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
}
