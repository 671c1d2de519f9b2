package service

import (
	"runtime"

	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
)

type SystemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStats struct {
	ModelCount      int64      `json:"model_count"`
	SculptCount     int64      `json:"sculpt_count"`
	CollectionCount int64      `json:"collection_count"`
	UploadCount     int64      `json:"upload_count"`
	StorageUsage    int64      `json:"storage_usage"`
	SystemInfo      SystemInfo `json:"system_info"`
}

// GetServerStats 获取仪表盘统计数据。
func GetServerStats() (*ServerStats, error) {
	var modelCount int64
	var sculptCount int64
	var collectionCount int64
	var uploadCount int64
	var totalSize int64

	if err := db.DB.Model(&model.ModelProfile{}).Count(&modelCount).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&model.Sculpt{}).Count(&sculptCount).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&model.CollectionEntry{}).Count(&collectionCount).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&model.Upload{}).Count(&uploadCount).Error; err != nil {
		return nil, err
	}

	if err := db.DB.Model(&model.Upload{}).Select("COALESCE(SUM(size_bytes), 0)").Scan(&totalSize).Error; err != nil {
		return nil, err
	}

	return &ServerStats{
		ModelCount:      modelCount,
		SculptCount:     sculptCount,
		CollectionCount: collectionCount,
		UploadCount:     uploadCount,
		StorageUsage:    totalSize,
		SystemInfo: SystemInfo{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
