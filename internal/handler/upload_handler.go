package handler

import (
	"log"
	"net/http"
	"strings"

	"malifaux-tracker-server/internal/dto"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// isUploadParamError 判断业务错误是否应作为 400 返回给调用方。
func isUploadParamError(errStr string) bool {
	return strings.Contains(errStr, "不支持的文件类型") ||
		strings.Contains(errStr, "文件大小") ||
		strings.Contains(errStr, "无效的") ||
		strings.Contains(errStr, "请至少标记") ||
		strings.Contains(errStr, "标记的雕像不存在") ||
		strings.Contains(errStr, "请选择文件") ||
		strings.Contains(errStr, "图片解码失败") ||
		strings.Contains(errStr, "与扩展名")
}

// UploadPhoto 上传一张收藏照片。
// multipart 字段: image(文件), caption, sculpt_ids(分号分隔, 必填),
// scene_tag(必填), status_tag, collection_ids(逗号分隔, 可选)。
func UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}

	upload, err := service.ProcessPhotoUpload(file, service.PhotoUploadParams{
		Caption:       c.PostForm("caption"),
		SculptIDs:     c.PostForm("sculpt_ids"),
		SceneTag:      c.PostForm("scene_tag"),
		StatusTag:     c.PostForm("status_tag"),
		CollectionIDs: c.PostForm("collection_ids"),
	})
	if err != nil {
		errStr := err.Error()
		if isUploadParamError(errStr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errStr})
		} else {
			// 对于其他错误（包括系统错误），记录日志并返回通用错误信息
			log.Printf("Upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "上传失败，请稍后重试"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "上传成功",
		"id":      upload.ID,
		"upload":  upload,
	})
}

// GetUploads 获取全部上传记录（按上传时间倒序）。
func GetUploads(c *gin.Context) {
	uploads, err := service.ListUploads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取图片列表失败"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// GetUploadByID 获取单条上传记录。
func GetUploadByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	upload, err := service.GetUpload(id)
	if err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取图片失败"})
		return
	}
	c.JSON(http.StatusOK, upload)
}

// UpdateUpload 编辑图片元数据。
func UpdateUpload(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	upload, err := service.UpdateUpload(id, req.Caption, req.SculptIDs, req.SceneTag, req.StatusTag)
	if err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在"})
			return
		}
		if isUploadParamError(err.Error()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "更新成功", "upload": upload})
}

// DeleteUpload 删除图片及其元数据，并清理收藏记录中的引用。
func DeleteUpload(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := service.DeleteUpload(id); err != nil {
		if service.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "图片不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
