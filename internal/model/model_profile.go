package model

// ModelProfile 规则层面的角色档案，与具体雕像无关
// keywords / station / characteristics 为逗号分隔的多值文本
type ModelProfile struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	ModelName       string `json:"model_name" gorm:"not null;index"`
	Faction         string `json:"faction" gorm:"not null"`
	Keywords        string `json:"keywords"`
	BaseSize        string `json:"base_size" gorm:"not null"`
	Station         string `json:"station"`
	Henchman        int    `json:"henchman" gorm:"default:0"`
	Versatile       int    `json:"versatile" gorm:"default:0"`
	Loyal           int    `json:"loyal" gorm:"default:0"`
	UniqueModel     int    `json:"unique_model" gorm:"default:0"`
	HireLimit       *int   `json:"hire_limit"`
	Cost            *int   `json:"cost"`
	Characteristics string `json:"characteristics"`
	Df              *int   `json:"df"`
	Wp              *int   `json:"wp"`
	Mv              *int   `json:"mv"`
	Sz              *int   `json:"sz"`
	Hp              *int   `json:"hp"`
	Stn             *int   `json:"stn"`
	CardFront       string `json:"card_front"`
	CardBack        string `json:"card_back"`
}

func (ModelProfile) TableName() string {
	return "model_profiles"
}
