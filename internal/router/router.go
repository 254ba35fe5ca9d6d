package router

import (
	"pic-share-server/internal/consts"
	"pic-share-server/internal/handler"
	"pic-share-server/internal/middleware"
	"pic-share-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
	service *service.AppService
}

func NewRouter(h *handler.Handler, appService *service.AppService) *Router {
	return &Router{
		handler: h,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	// 认证与上传限流：读取配置（在多个域路由中复用同一个实例，保持行为一致）
	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)
	uploadLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)

	registerPublicRoutes(api, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler)
	registerPostRoutes(api, uploadLimiter, rt.handler, rt.service)
	registerCommentRoutes(api, rt.handler)
	registerUserRoutes(api, rt.handler)
}
