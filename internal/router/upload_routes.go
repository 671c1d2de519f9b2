package router

import (
	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/handler"
	"malifaux-tracker-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUploadRoutes(api *gin.RouterGroup) {
	// 上传限流：读取配置
	uploadLimiter := middleware.RateLimitMiddleware(consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	api.GET("/uploads", handler.GetUploads)
	api.GET("/uploads/:id", handler.GetUploadByID)
	api.POST("/uploads", uploadBodyLimit, uploadLimiter, handler.UploadPhoto)
	api.PUT("/uploads/:id", handler.UpdateUpload)
	api.DELETE("/uploads/:id", handler.DeleteUpload)
}
