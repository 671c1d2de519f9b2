package service

import (
	"strconv"
	"sync"

	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
)

var (
	// 内存缓存
	settingsCache sync.Map
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Malifaux Tracker", Desc: "站点名称"},
	{Key: consts.ConfigSiteDescription, Value: "Catalog, collection and gallery tracker for Malifaux miniatures", Desc: "站点描述"},
	{Key: consts.ConfigUploaderName, Value: "collector", Desc: "上传者显示名（单用户模式）"},
	{Key: consts.ConfigMaxUploadSize, Value: "5", Desc: "单个文件最大大小 (MB)"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.webp", Desc: "允许上传的文件扩展名"},
	{Key: consts.ConfigFullImageMaxEdge, Value: "1600", Desc: "全尺寸图最长边 (px)"},
	{Key: consts.ConfigFullImageQuality, Value: "85", Desc: "全尺寸图 JPEG 质量 (1-100)"},
	{Key: consts.ConfigThumbMaxEdge, Value: "400", Desc: "缩略图最长边 (px)"},
	{Key: consts.ConfigThumbQuality, Value: "80", Desc: "缩略图 JPEG 质量 (1-100)"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流"},
	{Key: consts.ConfigRateLimitImportRPS, Value: "0.5", Desc: "导入接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitImportBurst, Value: "2", Desc: "导入接口突发请求限制"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "上传接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "普通接口最大请求体限制 (MB)"},
	{Key: consts.ConfigMaxImportBodySize, Value: "50", Desc: "导入接口最大请求体限制 (MB)"},
	{Key: consts.ConfigSearchCacheTTLSeconds, Value: "30", Desc: "搜索缓存有效期 (秒, 0 关闭)"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)"},
}

func ClearCache() {
	settingsCache.Range(func(key, value interface{}) bool {
		settingsCache.Delete(key)
		return true
	})
}

func InitializeSettings() {
	for _, def := range DefaultSettings {
		var count int64
		db.DB.Model(&model.Setting{}).Where("key = ?", def.Key).Count(&count)
		if count == 0 {
			db.DB.Create(&def)
		}
	}
}

// ListSettings 列出全部运行时设置。
func ListSettings() ([]model.Setting, error) {
	var settings []model.Setting
	if err := db.DB.Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSetting 更新指定设置并刷新缓存。
func UpdateSetting(key, value string) error {
	var setting model.Setting
	if err := db.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		return err
	}
	if err := db.DB.Model(&setting).Update("value", value).Error; err != nil {
		return err
	}
	settingsCache.Store(key, value)
	return nil
}

func GetString(key string) string {
	if val, ok := settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	var setting model.Setting
	if err := db.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				// 查到了默认值，写入数据库并写入缓存
				newSetting := def
				// 尝试写入数据库 (忽略错误，防止并发写入导致的主键冲突)
				db.DB.Create(&newSetting)

				settingsCache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}

		// 没查到，往缓存里存 DefaultValueNotFound 标记
		settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}
	// 数据库查到，写入缓存
	settingsCache.Store(key, setting.Value)

	return setting.Value
}

func GetInt(key string) int {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	// 尝试转成 int
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func GetInt64(key string) int64 {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	// 尝试转成 int64
	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func GetFloat64(key string) float64 {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func GetBool(key string) bool {
	valStr := GetString(key)
	if valStr == "" {
		return false
	}

	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}
