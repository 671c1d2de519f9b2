package handler

import (
	"net/http"
	"os"
	"strconv"
	"testing"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func uploadRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/uploads", GetUploads)
	r.POST("/api/uploads", UploadPhoto)
	r.PUT("/api/uploads/:id", UpdateUpload)
	r.DELETE("/api/uploads/:id", DeleteUpload)
	return r
}

func chdirTemp(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

// 测试内容：验证图片上传的完整 HTTP 流程并关联收藏记录。
func TestUploadPhoto_EndToEnd(t *testing.T) {
	setupTestDB(t)
	chdirTemp(t)
	r := uploadRouter()

	sculpt := seedSculptWithModel(t, "Lady Justice", "Lady Justice (2021)", "WYR23011")
	entry := model.CollectionEntry{
		SculptID:         sculpt.ID,
		CollectionStatus: model.CollectionStatusOwned,
		MiniStatus:       model.MiniStatusPainted,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		t.Fatalf("创建收藏记录失败: %v", err)
	}

	body, contentType := multipartBody(t, map[string]string{
		"caption":        "first coat #wip",
		"sculpt_ids":     strconv.FormatUint(uint64(sculpt.ID), 10),
		"scene_tag":      model.SceneTagIndividualMini,
		"status_tag":     model.StatusTagWIP,
		"collection_ids": strconv.FormatUint(uint64(entry.ID), 10),
	}, "image", "photo.png", testutils.MinimalPNG(t))

	w := performRaw(t, r, http.MethodPost, "/api/uploads", contentType, body)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d (body=%s)", w.Code, w.Body.String())
	}
	var resp struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &resp)
	if resp.ID == 0 {
		t.Fatalf("期望返回上传 id")
	}

	var got model.CollectionEntry
	db.DB.First(&got, entry.ID)
	if got.UploadIDs != strconv.FormatUint(uint64(resp.ID), 10) {
		t.Fatalf("期望收藏记录关联上传，实际为 %q", got.UploadIDs)
	}

	// 列表应返回这条记录
	w = performJSON(t, r, http.MethodGet, "/api/uploads", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	var uploads []model.Upload
	decodeJSON(t, w, &uploads)
	if len(uploads) != 1 || uploads[0].ID != resp.ID {
		t.Fatalf("非预期列表: %+v", uploads)
	}
}

// 测试内容：验证缺少文件或标记时返回 400。
func TestUploadPhoto_BadRequests(t *testing.T) {
	setupTestDB(t)
	chdirTemp(t)
	r := uploadRouter()

	// 无文件
	body, contentType := multipartBody(t, map[string]string{
		"sculpt_ids": "1",
		"scene_tag":  model.SceneTagCollage,
	}, "", "", nil)
	w := performRaw(t, r, http.MethodPost, "/api/uploads", contentType, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}

	// 无标记
	body, contentType = multipartBody(t, map[string]string{
		"scene_tag": model.SceneTagCollage,
	}, "image", "photo.png", testutils.MinimalPNG(t))
	w = performRaw(t, r, http.MethodPost, "/api/uploads", contentType, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d (body=%s)", w.Code, w.Body.String())
	}

	var count int64
	db.DB.Model(&model.Upload{}).Count(&count)
	if count != 0 {
		t.Fatalf("期望无上传记录，实际为 %d", count)
	}
}

// 测试内容：验证编辑与删除接口的状态码映射。
func TestUploadHandlers_UpdateAndDelete(t *testing.T) {
	setupTestDB(t)
	chdirTemp(t)
	r := uploadRouter()

	sculpt := seedSculptWithModel(t, "Zoraida", "Swamp Hag", "WYR1")
	upload := model.Upload{
		Filename:   "x.jpg",
		SculptIDs:  strconv.FormatUint(uint64(sculpt.ID), 10),
		SceneTag:   model.SceneTagCollage,
		UploadedAt: 100,
	}
	if err := db.DB.Create(&upload).Error; err != nil {
		t.Fatalf("创建上传记录失败: %v", err)
	}
	idPath := "/api/uploads/" + strconv.FormatUint(uint64(upload.ID), 10)

	// 非法编辑
	w := performJSON(t, r, http.MethodPut, idPath, gin.H{
		"sculpt_ids": strconv.FormatUint(uint64(sculpt.ID), 10),
		"scene_tag":  "Selfie",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}

	// 合法编辑
	w = performJSON(t, r, http.MethodPut, idPath, gin.H{
		"caption":    "rebased",
		"sculpt_ids": strconv.FormatUint(uint64(sculpt.ID), 10),
		"scene_tag":  model.SceneTagCrewPicture,
		"status_tag": model.StatusTagFullyPainted,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d (body=%s)", w.Code, w.Body.String())
	}

	// 删除
	w = performJSON(t, r, http.MethodDelete, idPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	w = performJSON(t, r, http.MethodDelete, idPath, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
}
