package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/service"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证静态资源响应带配置的 Cache-Control。
func TestStaticCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	if err := db.DB.Save(&model.Setting{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=60"}).Error; err != nil {
		t.Fatalf("写入设置失败: %v", err)
	}
	service.ClearCache()

	r := gin.New()
	r.GET("/uploads/full/a.jpg", StaticCacheMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/full/a.jpg", nil))

	if got := w.Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Fatalf("Cache-Control 值为 %q", got)
	}
}
