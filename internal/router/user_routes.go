package router

import (
	"pic-share-server/internal/handler"
	"pic-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler) {
	users := api.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/self", middleware.JWTAuth(), h.GetSelfInfo)
	}
}
