package engine

import (
	"sort"

	"lucia/models"
)

// MergedObligations 合并手工计划与生成计划，得到目标月份的计划列表
//
// 手工计划按到期日过滤到目标月份；生成计划由调用方按月生成后直接并入。
// 合并结果按到期日升序稳定排序，到期日相同保持插入顺序，
// 供聚合器和界面的月度列表共同消费。
func MergedObligations(manual, generated []models.Obligation, month Month) []models.Obligation {
	merged := make([]models.Obligation, 0, len(manual)+len(generated))
	for _, o := range manual {
		if month.Contains(o.DueDate) {
			merged = append(merged, o)
		}
	}
	for _, o := range generated {
		if month.Contains(o.DueDate) {
			merged = append(merged, o)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DueDate.Before(merged[j].DueDate)
	})
	return merged
}
