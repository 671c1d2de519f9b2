package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	ClearCache()
	return gdb
}

func seedModelProfile(t *testing.T, name, faction string) model.ModelProfile {
	t.Helper()
	profile := model.ModelProfile{ModelName: name, Faction: faction}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("创建模型档案失败: %v", err)
	}
	return profile
}

func seedSculpt(t *testing.T, name string, modelID uint, sku string) model.Sculpt {
	t.Helper()
	sculpt := model.Sculpt{SculptName: name, ModelProfileID: modelID, SKU: sku}
	if err := db.DB.Create(&sculpt).Error; err != nil {
		t.Fatalf("创建雕像失败: %v", err)
	}
	return sculpt
}

func seedCollectionEntry(t *testing.T, sculptID uint, status, miniStatus string) model.CollectionEntry {
	t.Helper()
	entry := model.CollectionEntry{
		SculptID:         sculptID,
		CollectionStatus: status,
		MiniStatus:       miniStatus,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		t.Fatalf("创建收藏记录失败: %v", err)
	}
	return entry
}

func mustFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入分段失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest("POST", "http://example/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File["image"]
	if len(fhs) != 1 {
		t.Fatalf("期望 1 file header，实际为 %d", len(fhs))
	}
	return fhs[0]
}
