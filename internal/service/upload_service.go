package service

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"malifaux-tracker-server/internal/config"
	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
	"malifaux-tracker-server/internal/utils"

	"gorm.io/gorm"
)

// ListUploads 返回全部上传记录，按上传时间倒序。
func ListUploads() ([]model.Upload, error) {
	var uploads []model.Upload
	if err := db.DB.Order("uploaded_at DESC, id DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// GetUpload 获取单条上传记录。
func GetUpload(id uint) (*model.Upload, error) {
	var upload model.Upload
	if err := db.DB.First(&upload, id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

// UpdateUpload 更新上传记录的元数据（说明、标记的雕像、标签）。
// 图片文件本身不可变更。
func UpdateUpload(id uint, caption, sculptIDsRaw, sceneTag, statusTag string) (*model.Upload, error) {
	sculptIDs := utils.ParseIDList(sculptIDsRaw, ";")
	if len(sculptIDs) == 0 {
		return nil, errors.New("请至少标记一个雕像")
	}
	if !model.ValidSceneTag(sceneTag) {
		return nil, errors.New("无效的场景标签")
	}
	if !model.ValidStatusTag(statusTag) {
		return nil, errors.New("无效的状态标签")
	}
	if err := verifySculptsExist(sculptIDs); err != nil {
		return nil, err
	}

	var upload model.Upload
	if err := db.DB.First(&upload, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"caption":    caption,
		"sculpt_ids": utils.JoinIDList(sculptIDs, ";"),
		"scene_tag":  sceneTag,
		"status_tag": statusTag,
	}
	if err := db.DB.Model(&upload).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

// DeleteUpload 删除上传记录及其两份派生图，并从所有收藏记录的
// upload_ids 列表中移除该 id。文件删除失败只记录日志，不阻断删除。
func DeleteUpload(id uint) error {
	var upload model.Upload
	if err := db.DB.First(&upload, id).Error; err != nil {
		return err
	}

	cfg := config.Get()
	for _, path := range []string{
		filepath.Join(cfg.Upload.FullPath, upload.Filename),
		filepath.Join(cfg.Upload.ThumbPath, upload.Filename),
	} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Remove upload file %s error: %v\n", path, err)
		}
	}

	result := db.DB.Delete(&model.Upload{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	scrubUploadReferences(id)
	return nil
}

// scrubUploadReferences 从所有引用了该上传的收藏记录中移除 id。
// LIKE 预筛出候选行，再用精确的列表比对剔除，避免 1 误匹配 11。
func scrubUploadReferences(uploadID uint) {
	var entries []model.CollectionEntry
	pattern := "%" + utils.JoinIDList([]uint{uploadID}, ";") + "%"
	if err := db.DB.Where("upload_ids LIKE ?", pattern).Find(&entries).Error; err != nil {
		log.Printf("Scrub upload %d references query error: %v\n", uploadID, err)
		return
	}
	for _, entry := range entries {
		if !utils.ContainsID(entry.UploadIDs, uploadID) {
			continue
		}
		newList := utils.RemoveID(entry.UploadIDs, uploadID)
		if err := db.DB.Model(&entry).Update("upload_ids", newList).Error; err != nil {
			log.Printf("Scrub upload %d from entry %d error: %v\n", uploadID, entry.ID, err)
		}
	}
}
