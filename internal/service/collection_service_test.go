package service

import (
	"testing"
	"time"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
)

// 测试内容：验证新增收藏记录并能在列表中按创建时间倒序读出。
func TestAddToCollection_RoundTrip(t *testing.T) {
	setupTestDB(t)
	profile := seedModelProfile(t, "Lady Justice", "Guild")
	sculpt := seedSculpt(t, "Lady Justice (2021)", profile.ID, "WYR23011")

	id, err := AddToCollection(sculpt.ID, model.CollectionStatusOwned, model.MiniStatusPainted, "shelf A")
	if err != nil {
		t.Fatalf("AddToCollection 错误: %v", err)
	}
	if id == 0 {
		t.Fatalf("期望返回新记录 id")
	}

	rows, err := ListCollection()
	if err != nil {
		t.Fatalf("ListCollection 错误: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("期望 1 行，实际为 %d", len(rows))
	}
	row := rows[0]
	if row.CollectionStatus != model.CollectionStatusOwned || row.MiniStatus != model.MiniStatusPainted {
		t.Fatalf("非预期状态: %+v", row)
	}
	if row.SculptName == nil || *row.SculptName != "Lady Justice (2021)" {
		t.Fatalf("期望带出雕像名，实际为 %v", row.SculptName)
	}
	if row.ModelName == nil || *row.ModelName != "Lady Justice" {
		t.Fatalf("期望带出模型名，实际为 %v", row.ModelName)
	}
}

// 测试内容：验证无效枚举值与不存在的雕像被拒绝。
func TestAddToCollection_Validation(t *testing.T) {
	setupTestDB(t)
	profile := seedModelProfile(t, "Zoraida", "Neverborn")
	sculpt := seedSculpt(t, "Swamp Hag", profile.ID, "WYR1")

	if _, err := AddToCollection(sculpt.ID, "Borrowed", model.MiniStatusPrimed, ""); err == nil || err.Error() != "无效的收藏状态" {
		t.Fatalf("期望无效收藏状态被拒绝，实际为 %v", err)
	}
	if _, err := AddToCollection(sculpt.ID, model.CollectionStatusOwned, "Done", ""); err == nil || err.Error() != "无效的制作进度" {
		t.Fatalf("期望无效制作进度被拒绝，实际为 %v", err)
	}
	if _, err := AddToCollection(9999, model.CollectionStatusOwned, model.MiniStatusPrimed, ""); err == nil || err.Error() != "雕像不存在" {
		t.Fatalf("期望不存在的雕像被拒绝，实际为 %v", err)
	}
}

// 测试内容：验证更新收藏记录不改变创建时间，且 uploadIDs 为 nil 时保留原值。
func TestUpdateCollectionEntry_PreservesCreatedAtAndUploadIDs(t *testing.T) {
	setupTestDB(t)
	profile := seedModelProfile(t, "Lady Justice", "Guild")
	sculpt := seedSculpt(t, "Lady Justice (2021)", profile.ID, "WYR23011")

	entry := seedCollectionEntry(t, sculpt.ID, model.CollectionStatusWishlist, model.MiniStatusUnassembled)
	db.DB.Model(&entry).Update("upload_ids", "3;7")
	var before model.CollectionEntry
	db.DB.First(&before, entry.ID)

	time.Sleep(10 * time.Millisecond)
	err := UpdateCollectionEntry(entry.ID, model.CollectionStatusOwned, model.MiniStatusPainted, "done", nil)
	if err != nil {
		t.Fatalf("UpdateCollectionEntry 错误: %v", err)
	}

	var after model.CollectionEntry
	db.DB.First(&after, entry.ID)
	if after.CollectionStatus != model.CollectionStatusOwned || after.MiniStatus != model.MiniStatusPainted || after.Notes != "done" {
		t.Fatalf("非预期更新结果: %+v", after)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("期望创建时间不变: before=%v after=%v", before.CreatedAt, after.CreatedAt)
	}
	if after.UploadIDs != "3;7" {
		t.Fatalf("期望 upload_ids 保留，实际为 %q", after.UploadIDs)
	}

	// 显式传入 uploadIDs 时覆盖
	empty := ""
	if err := UpdateCollectionEntry(entry.ID, model.CollectionStatusOwned, model.MiniStatusPainted, "done", &empty); err != nil {
		t.Fatalf("UpdateCollectionEntry 错误: %v", err)
	}
	db.DB.First(&after, entry.ID)
	if after.UploadIDs != "" {
		t.Fatalf("期望 upload_ids 被清空，实际为 %q", after.UploadIDs)
	}
}

// 测试内容：验证删除收藏记录，不存在的 id 返回未找到。
func TestDeleteCollectionEntry(t *testing.T) {
	setupTestDB(t)
	profile := seedModelProfile(t, "Zoraida", "Neverborn")
	sculpt := seedSculpt(t, "Swamp Hag", profile.ID, "WYR1")
	entry := seedCollectionEntry(t, sculpt.ID, model.CollectionStatusOwned, model.MiniStatusPrimed)

	if err := DeleteCollectionEntry(entry.ID); err != nil {
		t.Fatalf("DeleteCollectionEntry 错误: %v", err)
	}
	if err := DeleteCollectionEntry(entry.ID); !IsRecordNotFound(err) {
		t.Fatalf("期望未找到错误，实际为 %v", err)
	}
}

// 测试内容：验证同一雕像允许存在多条收藏记录。
func TestAddToCollection_AllowsDuplicateSculpt(t *testing.T) {
	setupTestDB(t)
	profile := seedModelProfile(t, "Gremlin", "Bayou")
	sculpt := seedSculpt(t, "Gremlin A", profile.ID, "WYR2")

	if _, err := AddToCollection(sculpt.ID, model.CollectionStatusOwned, model.MiniStatusPainted, ""); err != nil {
		t.Fatalf("第一条记录失败: %v", err)
	}
	if _, err := AddToCollection(sculpt.ID, model.CollectionStatusOwned, model.MiniStatusUnassembled, "second copy"); err != nil {
		t.Fatalf("第二条记录失败: %v", err)
	}

	rows, err := ListCollection()
	if err != nil {
		t.Fatalf("ListCollection 错误: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望 2 行，实际为 %d", len(rows))
	}
}
