package handler

import (
	"net/http"

	"malifaux-tracker-server/internal/dto"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSettings 列出全部运行时设置。
func GetSettings(c *gin.Context) {
	settings, err := service.ListSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取配置失败"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSetting 更新单个运行时设置，立即生效。
func UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := service.UpdateSetting(key, req.Value); err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "配置项不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "配置更新成功"})
}
