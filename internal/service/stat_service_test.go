package service

import (
	"runtime"
	"testing"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
)

// 测试内容：验证统计数据包含各表计数、存储用量和系统信息。
func TestGetServerStats(t *testing.T) {
	setupTestDB(t)

	profile := seedModelProfile(t, "Lady Justice", "Guild")
	sculpt := seedSculpt(t, "Lady Justice (2021)", profile.ID, "WYR23011")
	seedCollectionEntry(t, sculpt.ID, model.CollectionStatusOwned, model.MiniStatusPainted)
	db.DB.Create(&model.Upload{Filename: "a.jpg", SculptIDs: "1", SceneTag: model.SceneTagCollage, SizeBytes: 100, UploadedAt: 1})
	db.DB.Create(&model.Upload{Filename: "b.jpg", SculptIDs: "1", SceneTag: model.SceneTagCollage, SizeBytes: 250, UploadedAt: 2})

	stats, err := GetServerStats()
	if err != nil {
		t.Fatalf("GetServerStats 错误: %v", err)
	}
	if stats.ModelCount != 1 || stats.SculptCount != 1 || stats.CollectionCount != 1 {
		t.Fatalf("非预期计数: %+v", stats)
	}
	if stats.UploadCount != 2 || stats.StorageUsage != 350 {
		t.Fatalf("非预期上传统计: count=%d usage=%d", stats.UploadCount, stats.StorageUsage)
	}
	if stats.SystemInfo.OS != runtime.GOOS || stats.SystemInfo.Arch != runtime.GOARCH {
		t.Fatalf("非预期系统信息: %+v", stats.SystemInfo)
	}
	if stats.SystemInfo.NumCPU <= 0 || stats.SystemInfo.NumGoroutine <= 0 {
		t.Fatalf("期望系统计数为正: %+v", stats.SystemInfo)
	}
}
