package router

import (
	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/handler"
	"malifaux-tracker-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerCatalogRoutes(api *gin.RouterGroup) {
	api.GET("/models", handler.GetModels)
	api.GET("/sculpts", handler.GetSculpts)
	api.GET("/sculpts/search", handler.SearchSculpts)

	// 导入限流：读取配置
	importLimiter := middleware.RateLimitMiddleware(consts.ConfigRateLimitImportRPS, consts.ConfigRateLimitImportBurst)
	importBodyLimit := middleware.ImportBodyLimitMiddleware()

	importGroup := api.Group("/import")
	importGroup.Use(importBodyLimit, importLimiter)
	importGroup.POST("/models", handler.ImportModels)
	importGroup.POST("/sculpts", handler.ImportSculpts)
}
