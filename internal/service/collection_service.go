package service

import (
	"errors"
	"time"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"

	"gorm.io/gorm"
)

// CollectionRow 收藏记录连同雕像与模型档案的读侧视图。
type CollectionRow struct {
	ID               uint      `json:"id"`
	SculptID         uint      `json:"sculpt_id"`
	CollectionStatus string    `json:"collection_status"`
	MiniStatus       string    `json:"mini_status"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UploadIDs        string    `json:"upload_ids"`
	SculptName       *string   `json:"sculpt_name"`
	Edition          *string   `json:"edition"`
	SKU              *string   `json:"sku"`
	ModelName        *string   `json:"model_name"`
	Faction          *string   `json:"faction"`
	Keywords         *string   `json:"keywords"`
	BaseSize         *string   `json:"base_size"`
}

const collectionRowSelect = "uc.id, uc.sculpt_id, uc.collection_status, uc.mini_status, uc.notes, " +
	"uc.created_at, uc.upload_ids, s.sculpt_name, s.edition, s.sku, " +
	"m.model_name, m.faction, m.keywords, m.base_size"

// ListCollection 返回全部收藏记录，左连接雕像与模型，按创建时间倒序。
func ListCollection() ([]CollectionRow, error) {
	var rows []CollectionRow
	err := db.DB.Table("user_collection uc").
		Select(collectionRowSelect).
		Joins("LEFT JOIN sculpt_catalog s ON uc.sculpt_id = s.id").
		Joins("LEFT JOIN model_profiles m ON s.model_profile_id = m.id").
		Order("uc.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCollectionEntry 获取单条收藏记录。
func GetCollectionEntry(id uint) (*model.CollectionEntry, error) {
	var entry model.CollectionEntry
	if err := db.DB.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddToCollection 新增收藏记录，返回新记录 id。
// 创建路径硬校验雕像存在；读路径对遗留的坏引用保持宽容（左连接出 null）。
func AddToCollection(sculptID uint, collectionStatus, miniStatus, notes string) (uint, error) {
	if !model.ValidCollectionStatus(collectionStatus) {
		return 0, errors.New("无效的收藏状态")
	}
	if !model.ValidMiniStatus(miniStatus) {
		return 0, errors.New("无效的制作进度")
	}

	var sculpt model.Sculpt
	if err := db.DB.First(&sculpt, sculptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("雕像不存在")
		}
		return 0, err
	}

	entry := model.CollectionEntry{
		SculptID:         sculptID,
		CollectionStatus: collectionStatus,
		MiniStatus:       miniStatus,
		Notes:            notes,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// UpdateCollectionEntry 原地更新收藏记录；不触碰创建时间。
// uploadIDs 为 nil 时保留原有关联图片列表。
func UpdateCollectionEntry(id uint, collectionStatus, miniStatus, notes string, uploadIDs *string) error {
	if !model.ValidCollectionStatus(collectionStatus) {
		return errors.New("无效的收藏状态")
	}
	if !model.ValidMiniStatus(miniStatus) {
		return errors.New("无效的制作进度")
	}

	var entry model.CollectionEntry
	if err := db.DB.First(&entry, id).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"collection_status": collectionStatus,
		"mini_status":       miniStatus,
		"notes":             notes,
	}
	if uploadIDs != nil {
		updates["upload_ids"] = *uploadIDs
	}
	return db.DB.Model(&entry).Updates(updates).Error
}

// DeleteCollectionEntry 删除收藏记录。
func DeleteCollectionEntry(id uint) error {
	result := db.DB.Delete(&model.CollectionEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsRecordNotFound 判断错误是否为记录不存在。
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
