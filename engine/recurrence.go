package engine

import (
	"errors"

	"lucia/models"
)

// 周期展开的校验错误
var (
	ErrInvalidAmount   = errors.New("金额必须大于 0")
	ErrMissingCategory = errors.New("类别不能为空")
	ErrInvalidDueDate  = errors.New("到期日期无效")
	ErrInvalidRepeat   = errors.New("重复次数不能为负数")
)

// ExpandRecurring 把一条周期模板展开为 repeat+1 条相互独立的手工计划
//
// 第 i 条的到期日 = 模板到期日 + i 个自然月。日期推进走 time.AddDate
// 的溢出规则：锚定在 29/30/31 号的模板遇到短月时顺延进下个月月初
// （如 1 月 31 日 + 1 月 = 3 月 3 日），而不是收缩到月末。
// 所有周期展开都走这一条规则，展开结果的到期日严格递增。
func ExpandRecurring(tpl models.Obligation, repeat int) ([]models.Obligation, error) {
	if tpl.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if tpl.CategoryID == 0 {
		return nil, ErrMissingCategory
	}
	if tpl.DueDate.IsZero() {
		return nil, ErrInvalidDueDate
	}
	if repeat < 0 {
		return nil, ErrInvalidRepeat
	}

	out := make([]models.Obligation, 0, repeat+1)
	for i := 0; i <= repeat; i++ {
		o := tpl
		o.ID = NewManualID()
		o.Status = models.StatusPending
		o.IsGenerated = false
		o.DueDate = tpl.DueDate.AddDate(0, i, 0)
		out = append(out, o)
	}
	return out, nil
}
