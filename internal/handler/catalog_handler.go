package handler

import (
	"net/http"

	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetModels 获取全部模型档案。
func GetModels(c *gin.Context) {
	models, err := service.ListModels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取模型列表失败"})
		return
	}
	c.JSON(http.StatusOK, models)
}

// GetSculpts 获取全部雕像（含模型档案信息）。
func GetSculpts(c *gin.Context) {
	sculpts, err := service.ListSculpts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取雕像列表失败"})
		return
	}
	c.JSON(http.StatusOK, sculpts)
}

// SearchSculpts 按关键词搜索雕像，供联想输入使用。
func SearchSculpts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []service.SculptWithModel{})
		return
	}

	rows, err := service.SearchSculpts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "搜索失败"})
		return
	}
	if rows == nil {
		rows = []service.SculptWithModel{}
	}
	c.JSON(http.StatusOK, rows)
}
