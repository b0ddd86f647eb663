package models

import (
	"time"

	"gorm.io/gorm"
)

// InstallmentPurchase 分期购买模型（信用卡分期，N 期等额）
// 规划引擎只读这张表，用来推导每月的信用卡账单计划
type InstallmentPurchase struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Label            string         `json:"label" gorm:"size:100;not null"`
	CardName         string         `json:"card_name" gorm:"size:50;not null;index"`
	TotalAmount      float64        `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	InstallmentCount int            `json:"installment_count" gorm:"not null"` // 期数，至少 1 期
	PurchaseDate     time.Time      `json:"purchase_date" gorm:"not null"`     // 购买日期（按天）
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (InstallmentPurchase) TableName() string {
	return "installment_purchases"
}
