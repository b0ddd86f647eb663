package models

import (
	"time"
)

// 计划状态常量
const (
	StatusPending = "pending"
	StatusSettled = "settled"
)

// Obligation 计划收支模型（未来的收入或支出安排）
//
// 主键是字符串：手工计划使用 UUID，生成计划使用确定性的组合键
// （如 gen_card_招商银行_2024-05），同一来源重算永远得到同一个 id。
// 待处理的生成计划不落库，只有手工计划和已结算的生成计划才会入表；
// 同一个 id 至多存在一行，已结算行不会被重新生成的待处理实例覆盖。
//
// 注意：这张表不用软删除。撤销结算需要真正删掉生成行，让下一轮
// 生成重新给出待处理实例；软删除会让同 id 的再次结算撞唯一键。
type Obligation struct {
	ID          string    `json:"id" gorm:"primaryKey;size:64"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Kind        string    `json:"kind" gorm:"size:10;not null;index"` // income / expense
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
	Description string    `json:"description" gorm:"size:255"`
	DueDate     time.Time `json:"due_date" gorm:"not null;index"` // 到期日期（按天）
	Status      string    `json:"status" gorm:"size:10;not null;default:pending;index"`
	IsGenerated bool      `json:"is_generated" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Obligation) TableName() string {
	return "obligations"
}

// Signed 带符号金额：收入为正，支出为负
func (o Obligation) Signed() float64 {
	if o.Kind == KindExpense {
		return -o.Amount
	}
	return o.Amount
}
