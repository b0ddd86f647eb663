package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// 生成计划 id 的统一前缀。带这个前缀的行由引擎推导而来，
// 用户不能直接编辑，撤销结算时整行删除。
const generatedPrefix = "gen_"

// GeneratedID 确定性的生成计划 id：(种类, 分组键, 月份) -> 稳定字符串
// 同样的输入永远得到同一个 id，重算天然幂等，不依赖数据库自增主键
func GeneratedID(kind, groupKey string, month Month) string {
	if groupKey == "" {
		return fmt.Sprintf("%s%s_%s", generatedPrefix, kind, month)
	}
	return fmt.Sprintf("%s%s_%s_%s", generatedPrefix, kind, groupKey, month)
}

// InvoiceID 信用卡账单计划 id，如 gen_card_招商银行_2024-05
func InvoiceID(cardName string, month Month) string {
	return GeneratedID("card", cardName, month)
}

// TitheID 十一奉献计划 id，如 gen_tithe_2024-03
func TitheID(month Month) string {
	return GeneratedID("tithe", "", month)
}

// IsGeneratedID 判断 id 是否属于生成计划
func IsGeneratedID(id string) bool {
	return strings.HasPrefix(id, generatedPrefix)
}

// NewManualID 手工计划的新 id（UUID）
func NewManualID() string {
	return uuid.NewString()
}
