package model

import "time"

// 收藏状态枚举
const (
	CollectionStatusOwned    = "Owned"
	CollectionStatusWishlist = "Wishlist"
	CollectionStatusToSell   = "To Sell"
	CollectionStatusSold     = "Sold"
	CollectionStatusOther    = "Other"
)

// 制作进度枚举
const (
	MiniStatusUnassembled = "Unassembled"
	MiniStatusAssembled   = "Assembled"
	MiniStatusPrimed      = "Primed"
	MiniStatusPaintingWIP = "Painting WIP"
	MiniStatusPainted     = "Painted"
)

// CollectionEntry 用户对某个雕像的一条拥有/愿望记录
// 同一雕像可以有多条独立记录（例如拥有两份）
// upload_ids 为分号分隔的图片 id 列表，由应用层维护一致性
type CollectionEntry struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	SculptID         uint      `json:"sculpt_id" gorm:"not null;index"`
	CollectionStatus string    `json:"collection_status" gorm:"not null"`
	MiniStatus       string    `json:"mini_status" gorm:"not null"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UploadIDs        string    `json:"upload_ids"`
}

func (CollectionEntry) TableName() string {
	return "user_collection"
}

// ValidCollectionStatus 判断收藏状态是否为合法枚举值。
func ValidCollectionStatus(s string) bool {
	switch s {
	case CollectionStatusOwned, CollectionStatusWishlist, CollectionStatusToSell,
		CollectionStatusSold, CollectionStatusOther:
		return true
	}
	return false
}

// ValidMiniStatus 判断制作进度是否为合法枚举值。
func ValidMiniStatus(s string) bool {
	switch s {
	case MiniStatusUnassembled, MiniStatusAssembled, MiniStatusPrimed,
		MiniStatusPaintingWIP, MiniStatusPainted:
		return true
	}
	return false
}
