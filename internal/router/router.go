package router

import (
	"malifaux-tracker-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Init 注册全部 API 路由与全局中间件。
func Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	registerSystemRoutes(api)
	registerCatalogRoutes(api)
	registerCollectionRoutes(api)
	registerUploadRoutes(api)
}
