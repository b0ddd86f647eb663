package models

import (
	"time"

	"gorm.io/gorm"
)

// 收支方向常量
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction 台账流水模型（实际已发生的收支记录）
type Transaction struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Kind        string         `json:"kind" gorm:"size:10;not null;index"` // income / expense
	CategoryID  uint           `json:"category_id" gorm:"index;not null"`
	Description string         `json:"description" gorm:"size:255"`
	TxDate      time.Time      `json:"tx_date" gorm:"not null;index"` // 记账日期（按天）
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// Signed 带符号金额：收入为正，支出为负
func (t Transaction) Signed() float64 {
	if t.Kind == KindExpense {
		return -t.Amount
	}
	return t.Amount
}

// ValidKind 校验收支方向取值
func ValidKind(kind string) bool {
	return kind == KindIncome || kind == KindExpense
}
