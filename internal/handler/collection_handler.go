package handler

import (
	"net/http"
	"strconv"
	"strings"

	"malifaux-tracker-server/internal/dto"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的数字 id。
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的记录 ID"})
		return 0, false
	}
	return uint(id), true
}

// GetCollection 获取全部收藏记录（按创建时间倒序）。
func GetCollection(c *gin.Context) {
	rows, err := service.ListCollection()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取收藏列表失败"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetWishlist 获取按 SKU 分组的愿望单视图。
func GetWishlist(c *gin.Context) {
	groups, err := service.ListWishlistGroups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取愿望单失败"})
		return
	}
	if groups == nil {
		groups = []service.WishlistGroup{}
	}
	c.JSON(http.StatusOK, groups)
}

// GetCollectionEntry 获取单条收藏记录。
func GetCollectionEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := service.GetCollectionEntry(id)
	if err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "收藏记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取收藏记录失败"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// AddToCollection 新增收藏记录。
func AddToCollection(c *gin.Context) {
	var req dto.AddCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	id, err := service.AddToCollection(req.SculptID, req.CollectionStatus, req.MiniStatus, req.Notes)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "无效的") || errStr == "雕像不存在" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errStr})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "添加失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "添加成功", "id": id})
}

// UpdateCollectionEntry 更新收藏记录。
func UpdateCollectionEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	err := service.UpdateCollectionEntry(id, req.CollectionStatus, req.MiniStatus, req.Notes, req.UploadIDs)
	if err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "收藏记录不存在"})
			return
		}
		if strings.Contains(err.Error(), "无效的") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// DeleteCollectionEntry 删除收藏记录。
func DeleteCollectionEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := service.DeleteCollectionEntry(id); err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "收藏记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
