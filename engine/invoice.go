package engine

import (
	"fmt"

	"lucia/models"
)

// GenerateInvoices 由分期购买推导目标月份的信用卡账单计划
//
// 每笔购买按期数均摊（totalAmount / installmentCount），第 i 期落在
// 购买月 + i；命中目标月份的金额按卡名累加，每张卡汇出一条生成计划，
// id 为 gen_card_<卡名>_<YYYY-MM>，到期日取该卡登记的还款日或缺省还款日
//（超出当月天数时收缩到月末）。
//
// settled 是台账里已结算生成行的 id 索引：命中时原样返回已结算行并
// 跳过重新生成，保证已结算记录在重算后依然权威。
// invoiceCat 是约定的"信用卡账单"支出类别；未配置时静默跳过整个生成器。
func GenerateInvoices(purchases []models.InstallmentPurchase, settled map[string]models.Obligation, month Month, invoiceCat *models.Category, cfg Config) []models.Obligation {
	if invoiceCat == nil {
		return nil
	}

	// 按卡名累加，记录首次出现顺序保证输出确定
	sums := make(map[string]float64)
	var order []string
	for _, p := range purchases {
		if p.InstallmentCount < 1 || p.TotalAmount <= 0 {
			continue
		}
		per := p.TotalAmount / float64(p.InstallmentCount)
		purchaseMonth := MonthOf(p.PurchaseDate)
		for i := 1; i <= p.InstallmentCount; i++ {
			if purchaseMonth.AddMonths(i) != month {
				continue
			}
			if _, ok := sums[p.CardName]; !ok {
				order = append(order, p.CardName)
			}
			sums[p.CardName] += per
		}
	}

	var out []models.Obligation
	for _, card := range order {
		id := InvoiceID(card, month)
		if row, ok := settled[id]; ok {
			out = append(out, row)
			continue
		}
		out = append(out, models.Obligation{
			ID:          id,
			Amount:      sums[card],
			Kind:        models.KindExpense,
			CategoryID:  invoiceCat.ID,
			Description: fmt.Sprintf("%s %s 账单", card, month),
			DueDate:     month.Day(cfg.dueDayFor(card)),
			Status:      models.StatusPending,
			IsGenerated: true,
		})
	}
	return out
}
