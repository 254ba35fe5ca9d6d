package router

import (
	"pic-share-server/internal/handler"
	"pic-share-server/internal/middleware"
	"pic-share-server/internal/service"

	"github.com/gin-gonic/gin"
)

func registerPostRoutes(api *gin.RouterGroup, uploadLimiter gin.HandlerFunc, h *handler.Handler, appService *service.AppService) {
	posts := api.Group("/posts")
	{
		// 浏览类接口无需登录
		posts.GET("", h.GetPosts)
		posts.GET("/:user_id", h.GetUserPosts)
		// 兼容别名，路径语义更直观
		posts.GET("/user/:user_id", h.GetUserPosts)

		// 写操作需要登录
		authed := posts.Group("")
		authed.Use(middleware.JWTAuth())
		{
			authed.POST("", uploadLimiter, middleware.UploadBodyLimitMiddleware(appService), h.CreatePost)
			authed.DELETE("/:post_id", h.DeletePost)
			authed.POST("/:post_id/like", h.LikePost)
			authed.POST("/:post_id/unlike", h.UnlikePost)
		}
	}
}
