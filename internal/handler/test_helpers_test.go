package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/service"
	"malifaux-tracker-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	service.ClearCache()
	return gdb
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRaw(t *testing.T, r *gin.Engine, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("解析响应失败: %v (body=%s)", err, w.Body.String())
	}
}

func seedSculptWithModel(t *testing.T, modelName, sculptName, sku string) model.Sculpt {
	t.Helper()
	profile := model.ModelProfile{ModelName: modelName, Faction: "Guild"}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("创建模型档案失败: %v", err)
	}
	sculpt := model.Sculpt{SculptName: sculptName, ModelProfileID: profile.ID, SKU: sku}
	if err := db.DB.Create(&sculpt).Error; err != nil {
		t.Fatalf("创建雕像失败: %v", err)
	}
	return sculpt
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("写入字段失败: %v", err)
		}
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("写入文件失败: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}
	return buf.Bytes(), w.FormDataContentType()
}
