package handler

import (
	"fmt"
	"net/http"

	"malifaux-tracker-server/internal/dto"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportModels 批量导入模型档案。
// 请求体为 JSON 数组；部分行失败不影响其余行，失败详情在 error 字段中逐行列出。
func ImportModels(c *gin.Context) {
	var rows []dto.ModelRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	count, err := service.ImportModels(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Imported %d models", count)})
}

// ImportSculpts 批量导入雕像。
func ImportSculpts(c *gin.Context) {
	var rows []dto.SculptRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	count, err := service.ImportSculpts(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Imported %d sculpts", count)})
}
