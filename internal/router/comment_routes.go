package router

import (
	"pic-share-server/internal/handler"
	"pic-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerCommentRoutes(api *gin.RouterGroup, h *handler.Handler) {
	comments := api.Group("/comments")
	{
		// 浏览评论无需登录
		comments.GET("/:post_id", h.GetPostComments)

		authed := comments.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.POST("", h.AddComment)
			authed.DELETE("/:comment_id", h.DeleteComment)
		}
	}
}
