package router

import (
	"pic-share-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	auth := api.Group("")
	auth.Use(authLimiter)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}
