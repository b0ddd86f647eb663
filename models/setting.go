package models

import (
	"time"
)

// 设置键常量
const (
	// SettingCalculateTithing 是否自动生成十一奉献计划（"true"/"false"）
	SettingCalculateTithing = "calculate_tithing"
)

// Setting 应用设置（键值对，由用户在界面上开关）
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:50"`
	Value     string    `json:"value" gorm:"size:255"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Setting) TableName() string {
	return "settings"
}
