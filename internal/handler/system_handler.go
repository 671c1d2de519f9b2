package handler

import (
	"net/http"

	"malifaux-tracker-server/internal/config"
	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// Ping 健康检查。
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// GetWebInfo 获取前台展示用的公共配置项。
func GetWebInfo(c *gin.Context) {
	allowKeys := []string{
		consts.ConfigSiteName,
		consts.ConfigSiteDescription,
		consts.ConfigUploaderName,
	}

	type WebInfoItem struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	var response []WebInfoItem
	for _, key := range allowKeys {
		val := service.GetString(key)
		response = append(response, WebInfoItem{
			Key:   key,
			Value: val,
		})
	}
	c.JSON(http.StatusOK, response)
}

// GetImagePrefixes 获取两级派生图的访问前缀。
func GetImagePrefixes(c *gin.Context) {
	cfg := config.Get()
	c.JSON(http.StatusOK, gin.H{
		"full_prefix":  cfg.Upload.FullURLPrefix,
		"thumb_prefix": cfg.Upload.ThumbURLPrefix,
	})
}

// GetServerStats 获取仪表盘统计数据。
func GetServerStats(c *gin.Context) {
	stats, err := service.GetServerStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
