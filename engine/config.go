package engine

// 生成器缺省参数
const (
	DefaultTitheRate     = 0.10
	DefaultInvoiceDueDay = 10
	// TitheDueDay 十一奉献固定在每月 10 号
	TitheDueDay = 10
)

// Config 注入生成器的规划配置
// 生成器不读取任何全局状态，所有开关和约定名称都从这里传入
type Config struct {
	TitheEnabled    bool           // 是否生成十一奉献计划（用户设置）
	TitheRate       float64        // 计提比例，缺省 0.10
	TitheCategory   string         // 十一奉献支出类别的约定名称（大小写不敏感匹配）
	InvoiceCategory string         // 信用卡账单支出类别的约定名称
	InvoiceDueDay   int            // 账单缺省还款日
	CardDueDays     map[string]int // 按卡登记的还款日，优先于缺省值
}

// titheRate 计提比例，未配置时取缺省值
func (c Config) titheRate() float64 {
	if c.TitheRate <= 0 {
		return DefaultTitheRate
	}
	return c.TitheRate
}

// dueDayFor 卡的还款日：先查登记表，再落缺省值
func (c Config) dueDayFor(cardName string) int {
	if day, ok := c.CardDueDays[cardName]; ok && day >= 1 && day <= 31 {
		return day
	}
	if c.InvoiceDueDay >= 1 && c.InvoiceDueDay <= 31 {
		return c.InvoiceDueDay
	}
	return DefaultInvoiceDueDay
}
