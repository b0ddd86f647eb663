package engine

import (
	"fmt"
	"sort"

	"lucia/models"
)

// GenerateTithes 由可计提收入推导十一奉献计划
//
// 开关关闭时什么都不生成。开启时把类别带 tithe_eligible 标记的收入
// 流水按月汇总，月汇总 > 0 时按计提比例（缺省 10%）生成一条支出计划，
// id 为 gen_tithe_<YYYY-MM>，到期日固定在当月 10 号。
//
// titheCat 是约定的"十一奉献"支出类别；未配置时静默跳过该生成器，
// 不让整个聚合流程失败。settled 的去重规则与账单生成器一致。
func GenerateTithes(txs []models.Transaction, cats []models.Category, settled map[string]models.Obligation, titheCat *models.Category, cfg Config) []models.Obligation {
	if !cfg.TitheEnabled || titheCat == nil {
		return nil
	}

	eligible := make(map[uint]bool, len(cats))
	for _, c := range cats {
		if c.TitheEligible {
			eligible[c.ID] = true
		}
	}

	// 按月汇总可计提收入
	sums := make(map[Month]float64)
	for _, t := range txs {
		if t.Kind != models.KindIncome || !eligible[t.CategoryID] {
			continue
		}
		sums[MonthOf(t.TxDate)] += t.Amount
	}

	months := make([]Month, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].First().Before(months[j].First())
	})

	var out []models.Obligation
	for _, m := range months {
		if sums[m] <= 0 {
			continue
		}
		id := TitheID(m)
		if row, ok := settled[id]; ok {
			out = append(out, row)
			continue
		}
		out = append(out, models.Obligation{
			ID:          id,
			Amount:      cfg.titheRate() * sums[m],
			Kind:        models.KindExpense,
			CategoryID:  titheCat.ID,
			Description: fmt.Sprintf("十一奉献 %s", m),
			DueDate:     m.Day(TitheDueDay),
			Status:      models.StatusPending,
			IsGenerated: true,
		})
	}
	return out
}
