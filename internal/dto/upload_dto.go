package dto

// UpdateUploadRequest 编辑图片元数据。
type UpdateUploadRequest struct {
	Caption   string `json:"caption"`
	SculptIDs string `json:"sculpt_ids" binding:"required"`
	SceneTag  string `json:"scene_tag" binding:"required"`
	StatusTag string `json:"status_tag"`
}

// UpdateSettingRequest 更新单个运行时设置。
type UpdateSettingRequest struct {
	Value string `json:"value"`
}
