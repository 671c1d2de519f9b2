package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通请求体大小
// 批量导入与图片上传的路由有各自更宽松的限制，这里跳过
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.Contains(path, "/import/") || strings.Contains(path, "/uploads") {
			c.Next()
			return
		}

		maxSizeMB := service.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			// 如果未设置或为0，默认 2MB
			maxSizeMB = 2
		}

		// 限制大小 (MB -> Bytes)
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// ImportBodyLimitMiddleware 限制批量导入接口的请求体大小
// 导入的 JSON 批次可能远大于普通请求
func ImportBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := service.GetInt(consts.ConfigMaxImportBodySize)
		if maxSizeMB <= 0 {
			maxSizeMB = 50
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制图片上传接口的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := service.GetInt(consts.ConfigMaxUploadSize)
		if maxSizeMB <= 0 {
			maxSizeMB = 5
		}
		// multipart 自身有头部开销，放宽 1MB
		maxBytes := int64(maxSizeMB+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
