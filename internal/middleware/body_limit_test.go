package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证上传接口超过配置大小时返回 413。
func TestUploadBodyLimitMiddleware_RejectsTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	// 1MB limit (+1MB multipart 余量)
	if err := db.DB.Save(&model.Setting{Key: consts.ConfigMaxUploadSize, Value: "1"}).Error; err != nil {
		t.Fatalf("写入设置失败: %v", err)
	}
	service.ClearCache()

	r := gin.New()
	r.POST("/uploads", UploadBodyLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	payload := bytes.Repeat([]byte("a"), 3*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/uploads", bytes.NewReader(payload))
	req.ContentLength = int64(len(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
}

// 测试内容：验证普通接口请求体超限时读取失败，未超限时正常通过。
func TestBodyLimitMiddleware_LimitsNonImportRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	if err := db.DB.Save(&model.Setting{Key: consts.ConfigMaxRequestBodySize, Value: "1"}).Error; err != nil {
		t.Fatalf("写入设置失败: %v", err)
	}
	service.ClearCache()

	r := gin.New()
	r.Use(BodyLimitMiddleware())
	r.POST("/collection", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	big := bytes.Repeat([]byte("a"), 2*1024*1024)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/collection", bytes.NewReader(big)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望超限请求失败，实际为 %d", w.Code)
	}

	small := bytes.Repeat([]byte("a"), 1024)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/collection", bytes.NewReader(small)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望小请求通过，实际为 %d", w.Code)
	}
}

// 测试内容：验证导入路径不受普通请求体限制约束。
func TestBodyLimitMiddleware_SkipsImportRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	if err := db.DB.Save(&model.Setting{Key: consts.ConfigMaxRequestBodySize, Value: "1"}).Error; err != nil {
		t.Fatalf("写入设置失败: %v", err)
	}
	service.ClearCache()

	r := gin.New()
	r.Use(BodyLimitMiddleware())
	r.POST("/api/import/models", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	big := bytes.Repeat([]byte("a"), 2*1024*1024)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/import/models", bytes.NewReader(big)))
	if w.Code != http.StatusOK {
		t.Fatalf("期望导入路径跳过限制，实际为 %d", w.Code)
	}
}
