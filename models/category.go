package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 收支类别（后台维护）
// TitheEligible 标记该收入类别是否计入十一奉献的计提基数
type Category struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Kind          string         `json:"kind" gorm:"size:10;not null;index"` // income / expense
	TitheEligible bool           `json:"tithe_eligible" gorm:"not null;default:false"`
	Sort          int            `json:"sort" gorm:"default:0;index"`
	Color         string         `json:"color" gorm:"size:20;default:#64748b"` // 颜色代码，如 #ef4444
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
