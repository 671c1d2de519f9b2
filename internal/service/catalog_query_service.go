package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"malifaux-tracker-server/internal/consts"
	"malifaux-tracker-server/internal/db"
	"malifaux-tracker-server/internal/model"
)

// SculptWithModel 雕像连同其模型档案的读侧视图。
// 左连接下模型可能缺失（导入期解析失败的遗留数据），相关字段为 null。
type SculptWithModel struct {
	ID                uint    `json:"id"`
	SculptName        string  `json:"sculpt_name"`
	ModelProfileID    uint    `json:"model_profile_id"`
	Edition           string  `json:"edition"`
	SKU               string  `json:"sku"`
	OfficialArtwork   string  `json:"official_artwork"`
	OfficialRender    string  `json:"official_render"`
	SpruePhoto        string  `json:"sprue_photo"`
	BuildInstructions string  `json:"build_instructions"`
	ModelName         *string `json:"model_name"`
	Faction           *string `json:"faction"`
	Keywords          *string `json:"keywords"`
}

const sculptWithModelSelect = "s.id, s.sculpt_name, s.model_profile_id, s.edition, s.sku, " +
	"s.official_artwork, s.official_render, s.sprue_photo, s.build_instructions, " +
	"m.model_name, m.faction, m.keywords"

// ListModels 返回全部模型档案，按名称排序。
func ListModels() ([]model.ModelProfile, error) {
	var models []model.ModelProfile
	if err := db.DB.Order("model_name").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// ListSculpts 返回全部雕像并左连接模型档案，按雕像名称排序。
func ListSculpts() ([]SculptWithModel, error) {
	var rows []SculptWithModel
	err := db.DB.Table("sculpt_catalog s").
		Select(sculptWithModelSelect).
		Joins("LEFT JOIN model_profiles m ON s.model_profile_id = m.id").
		Order("s.sculpt_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchSculpts 搜索雕像供联想输入使用。
// 对雕像名、模型名、派系、关键词做大小写不敏感的子串匹配，最多返回 20 条。
// 查询层不限制最短长度（由前端控制），启用 Redis 时结果短暂缓存。
func SearchSculpts(query string) ([]SculptWithModel, error) {
	cacheKey := RedisKey("search", strings.ToLower(query))
	ttl := time.Duration(GetInt(consts.ConfigSearchCacheTTLSeconds)) * time.Second

	if rdb := GetRedisClient(); rdb != nil && ttl > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var rows []SculptWithModel
			if json.Unmarshal(cached, &rows) == nil {
				return rows, nil
			}
		}
	}

	term := "%" + query + "%"
	var rows []SculptWithModel
	err := db.DB.Table("sculpt_catalog s").
		Select(sculptWithModelSelect).
		Joins("LEFT JOIN model_profiles m ON s.model_profile_id = m.id").
		Where("LOWER(s.sculpt_name) LIKE LOWER(?) OR LOWER(m.model_name) LIKE LOWER(?) OR LOWER(m.faction) LIKE LOWER(?) OR LOWER(m.keywords) LIKE LOWER(?)",
			term, term, term, term).
		Order("s.sculpt_name").
		Limit(20).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if rdb := GetRedisClient(); rdb != nil && ttl > 0 {
		if payload, err := json.Marshal(rows); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			// 缓存写入失败不影响查询结果
			_ = rdb.Set(ctx, cacheKey, payload, ttl).Err()
		}
	}

	return rows, nil
}
