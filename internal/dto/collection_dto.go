package dto

// AddCollectionRequest 新增收藏记录（字段名沿用原有前端约定）。
type AddCollectionRequest struct {
	SculptID         uint   `json:"sculptId" binding:"required"`
	CollectionStatus string `json:"collectionStatus" binding:"required"`
	MiniStatus       string `json:"miniStatus" binding:"required"`
	Notes            string `json:"notes"`
}

// UpdateCollectionRequest 更新收藏记录；UploadIDs 为 nil 时不修改关联图片。
type UpdateCollectionRequest struct {
	CollectionStatus string  `json:"collectionStatus" binding:"required"`
	MiniStatus       string  `json:"miniStatus" binding:"required"`
	Notes            string  `json:"notes"`
	UploadIDs        *string `json:"upload_ids"`
}
