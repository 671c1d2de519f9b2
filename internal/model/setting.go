package model

type Setting struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"unique;not null"`
	Value string `json:"value"`
	Desc  string `json:"desc"`
}
