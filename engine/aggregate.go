package engine

import (
	"lucia/models"
)

// Summary 月度汇总
type Summary struct {
	Income         float64 `json:"income"`          // 实际收入合计
	Expense        float64 `json:"expense"`         // 实际支出合计
	PlannedIncome  float64 `json:"planned_income"`  // 待处理手工计划收入合计
	PlannedExpense float64 `json:"planned_expense"` // 待处理手工计划支出合计
}

// BalancePoint 余额曲线上的一个点
type BalancePoint struct {
	Day     int     `json:"day"`
	Balance float64 `json:"balance"`
}

// MonthlySummary 月度汇总：实际收支取台账流水，计划收支只统计
// 待处理的手工计划
//
// 生成计划有意不计入计划汇总——它们仍会出现在当月的合并计划列表
// 和余额曲线里，这是沿用下来的口径差异，不要悄悄"修正"。
func MonthlySummary(txs []models.Transaction, manual []models.Obligation, month Month) Summary {
	var s Summary
	for _, t := range txs {
		if !month.Contains(t.TxDate) {
			continue
		}
		if t.Kind == models.KindIncome {
			s.Income += t.Amount
		} else {
			s.Expense += t.Amount
		}
	}
	for _, o := range manual {
		if o.Status != models.StatusPending || o.IsGenerated || !month.Contains(o.DueDate) {
			continue
		}
		if o.Kind == models.KindIncome {
			s.PlannedIncome += o.Amount
		} else {
			s.PlannedExpense += o.Amount
		}
	}
	return s
}

// BalanceSeries 日度滚动余额曲线
//
// 起始余额 = 严格早于当月第一天的全部台账流水的带符号合计；
// 此后每天叠加 (a) 当天的实际流水 和 (b) 当天到期的待处理计划
//（手工 + 生成的合并结果）。已结算计划不会重复计入——它在结算时
// 已经变成一条流水。每个自然日输出一个点，最后按展示需要抽稀。
func BalanceSeries(txs []models.Transaction, merged []models.Obligation, month Month) []BalancePoint {
	first := month.First()
	start := 0.0
	for _, t := range txs {
		if t.TxDate.Before(first) {
			start += t.Signed()
		}
	}

	days := month.Days()
	deltas := make([]float64, days+1)
	for _, t := range txs {
		if month.Contains(t.TxDate) {
			deltas[t.TxDate.Day()] += t.Signed()
		}
	}
	for _, o := range merged {
		if o.Status != models.StatusPending || !month.Contains(o.DueDate) {
			continue
		}
		deltas[o.DueDate.Day()] += o.Signed()
	}

	points := make([]BalancePoint, 0, days)
	balance := start
	for d := 1; d <= days; d++ {
		balance += deltas[d]
		points = append(points, BalancePoint{Day: d, Balance: balance})
	}
	return Downsample(points)
}

// Downsample 曲线抽稀：12 个点以内原样返回，否则保留首尾两点，
// 中间按步长等距取样，输出长度始终不超过 12
//
// 步长向上取整（而不是向下），否则 28~31 天的整月曲线会多出几个点、
// 突破 12 的上限。
func Downsample(points []BalancePoint) []BalancePoint {
	n := len(points)
	if n <= 12 {
		return points
	}
	stride := (n - 2 + 9) / 10
	if stride < 1 {
		stride = 1
	}
	out := make([]BalancePoint, 0, 12)
	out = append(out, points[0])
	for i := 1 + stride; i < n-1; i += stride {
		out = append(out, points[i])
	}
	out = append(out, points[n-1])
	return out
}

// SettlementTransaction 结算一条计划时写入台账的流水
// 金额、方向、类别、描述照抄计划，记账日期取计划到期日
func SettlementTransaction(o models.Obligation) models.Transaction {
	return models.Transaction{
		Amount:      o.Amount,
		Kind:        o.Kind,
		CategoryID:  o.CategoryID,
		Description: o.Description,
		TxDate:      o.DueDate,
	}
}
