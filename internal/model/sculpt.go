package model

// Sculpt 某个 ModelProfile 的一次实体发行
// edition 为逗号分隔多值，sku 为 " / " 分隔多值（同一雕像可出现在多个盒装中）
// model_profile_id 在导入时按名称解析，存储层不做外键级联
type Sculpt struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	SculptName        string `json:"sculpt_name" gorm:"not null;index"`
	ModelProfileID    uint   `json:"model_profile_id" gorm:"not null;index"`
	Edition           string `json:"edition" gorm:"not null"`
	SKU               string `json:"sku" gorm:"column:sku"`
	OfficialArtwork   string `json:"official_artwork"`
	OfficialRender    string `json:"official_render"`
	SpruePhoto        string `json:"sprue_photo"`
	BuildInstructions string `json:"build_instructions"`
}

func (Sculpt) TableName() string {
	return "sculpt_catalog"
}
