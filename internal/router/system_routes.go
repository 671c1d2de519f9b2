package router

import (
	"malifaux-tracker-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(api *gin.RouterGroup) {
	api.GET("/ping", handler.Ping)
	api.GET("/webinfo", handler.GetWebInfo)
	api.GET("/image_prefix", handler.GetImagePrefixes)
	api.GET("/stats", handler.GetServerStats)

	api.GET("/settings", handler.GetSettings)
	api.PUT("/settings/:key", handler.UpdateSetting)
}
