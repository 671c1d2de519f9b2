package model

// 场景标签枚举
const (
	SceneTagIndividualMini = "Individual Mini"
	SceneTagCollage        = "Collage"
	SceneTagCrewPicture    = "Crew Picture"
	SceneTagBattleSnapshot = "Battle Snapshot"
)

// 状态标签枚举（可为空）
const (
	StatusTagFullyPainted = "Fully Painted"
	StatusTagWIP          = "WIP"
)

// Upload 一张上传图片及其元数据
// sculpt_ids 为分号分隔的雕像 id 列表，至少一个
// caption 中的 #hashtag 仅在前端渲染时解释
type Upload struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	Filename         string `json:"filename" gorm:"not null;unique"`
	OriginalFilename string `json:"original_filename"`
	Caption          string `json:"caption"`
	SculptIDs        string `json:"sculpt_ids" gorm:"not null"`
	SceneTag         string `json:"scene_tag" gorm:"not null"`
	StatusTag        string `json:"status_tag"`
	SizeBytes        int64  `json:"size_bytes" gorm:"default:0"`
	UploadedAt       int64  `json:"uploaded_at" gorm:"not null;index"`
	UploadedBy       string `json:"uploaded_by"`
}

func (Upload) TableName() string {
	return "uploads"
}

// ValidSceneTag 判断场景标签是否为合法枚举值。
func ValidSceneTag(s string) bool {
	switch s {
	case SceneTagIndividualMini, SceneTagCollage, SceneTagCrewPicture, SceneTagBattleSnapshot:
		return true
	}
	return false
}

// ValidStatusTag 判断状态标签是否合法，空串表示未指定。
func ValidStatusTag(s string) bool {
	switch s {
	case "", StatusTagFullyPainted, StatusTagWIP:
		return true
	}
	return false
}
