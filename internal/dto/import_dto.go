package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// 导入行记录来自前端解析好的 CSV，数值与布尔字段的类型并不可靠：
// 同一列可能是 JSON 数字、数字字符串、空串或 null。
// 这里用宽松标量类型承接，归一化逻辑集中在 UnmarshalJSON 中。

// FlexInt 宽松整数：null / "" 视为缺失，数字与数字字符串均可。
type FlexInt struct {
	Value int
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		f.Valid = false
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			f.Valid = false
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			// 非数字字符串视为缺失而不是整批失败
			f.Valid = false
			return nil
		}
		f.Value = v
		f.Valid = true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = int(v)
	f.Valid = true
	return nil
}

// Ptr 返回可直接写入可空列的指针，缺失时为 nil。
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexBool 宽松布尔：true/非零数字/"1"/"t"/"true"/"yes"/"y" 为真。
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = false
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "t", "true", "yes", "y":
			*f = true
		default:
			*f = false
		}
		return nil
	}
	if string(data) == "true" {
		*f = true
		return nil
	}
	if string(data) == "false" {
		*f = false
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = v != 0
	return nil
}

// Int 返回 0/1，对应存储列的整型约定。
func (f FlexBool) Int() int {
	if f {
		return 1
	}
	return 0
}

// ModelRef 雕像导入中的 model_profile_id：可以是数字 id，也可以是模型名称。
type ModelRef struct {
	ID   uint
	Name string
	IsID bool
}

func (m *ModelRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		m.Name = strings.TrimSpace(s)
		m.IsID = false
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m.ID = uint(v)
	m.IsID = true
	return nil
}

// ModelRow 模型档案导入行。
type ModelRow struct {
	ModelName       string   `json:"model_name"`
	Faction         string   `json:"faction"`
	Keywords        string   `json:"keywords"`
	BaseSize        string   `json:"base_size"`
	Station         string   `json:"station"`
	Henchman        FlexBool `json:"henchman"`
	Versatile       FlexBool `json:"versatile"`
	Loyal           FlexBool `json:"loyal"`
	Unique          FlexBool `json:"unique"`
	HireLimit       FlexInt  `json:"hire_limit"`
	Cost            FlexInt  `json:"cost"`
	Characteristics string   `json:"characteristics"`
	Df              FlexInt  `json:"df"`
	Wp              FlexInt  `json:"wp"`
	Mv              FlexInt  `json:"mv"`
	Sz              FlexInt  `json:"sz"`
	Hp              FlexInt  `json:"hp"`
	Stn             FlexInt  `json:"stn"`
	CardFront       string   `json:"card_front"`
	CardBack        string   `json:"card_back"`
}

// SculptRow 雕像导入行。
type SculptRow struct {
	SculptName        string   `json:"sculpt_name"`
	ModelProfileID    ModelRef `json:"model_profile_id"`
	Edition           string   `json:"edition"`
	SKU               string   `json:"sku"`
	OfficialArtwork   string   `json:"official_artwork"`
	OfficialRender    string   `json:"official_render"`
	SpruePhoto        string   `json:"sprue_photo"`
	BuildInstructions string   `json:"build_instructions"`
}
