package api

import (
	"encoding/json"
	"strings"

	"lucia/config"
	"lucia/database"
	"lucia/engine"
	"lucia/models"

	"github.com/gin-gonic/gin"
)

// PlanningHandler 规划与预测处理器：月度汇总、合并计划列表、余额曲线
type PlanningHandler struct{}

// NewPlanningHandler 创建规划处理器
func NewPlanningHandler() *PlanningHandler {
	return &PlanningHandler{}
}

// planningData 一次月度计算需要的全部输入，按请求加载一遍
type planningData struct {
	txs        []models.Transaction
	manual     []models.Obligation          // 库内手工计划（待处理 + 已结算）
	settledGen map[string]models.Obligation // 库内已结算的生成计划，按 id 索引
	purchases  []models.InstallmentPurchase
	cats       []models.Category
	cfg        engine.Config
	titheCat   *models.Category
	invoiceCat *models.Category
}

// findCategoryByName 按约定名称找类别（大小写不敏感），找不到返回 nil
func findCategoryByName(cats []models.Category, name string) *models.Category {
	if name == "" {
		return nil
	}
	for i := range cats {
		if strings.EqualFold(cats[i].Name, name) {
			return &cats[i]
		}
	}
	return nil
}

// loadPlanningData 从各个存储拉取引擎输入并组装注入配置
func loadPlanningData() (*planningData, error) {
	d := &planningData{settledGen: make(map[string]models.Obligation)}

	if err := database.DB.Find(&d.txs).Error; err != nil {
		return nil, err
	}
	var obligations []models.Obligation
	if err := database.DB.Find(&obligations).Error; err != nil {
		return nil, err
	}
	for _, o := range obligations {
		if engine.IsGeneratedID(o.ID) {
			if o.Status == models.StatusSettled {
				d.settledGen[o.ID] = o
			}
			// 待处理的生成行不应该存在；就算有也当作临时数据忽略
			continue
		}
		d.manual = append(d.manual, o)
	}
	if err := database.DB.Find(&d.purchases).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Find(&d.cats).Error; err != nil {
		return nil, err
	}

	// 十一奉献开关来自用户设置
	var setting models.Setting
	titheEnabled := false
	if err := database.DB.Where("`key` = ?", models.SettingCalculateTithing).First(&setting).Error; err == nil {
		titheEnabled = setting.Value == "true"
	}

	pc := config.GetConfig().Planning
	d.cfg = engine.Config{
		TitheEnabled:    titheEnabled,
		TitheRate:       pc.TitheRate,
		TitheCategory:   pc.TitheCategory,
		InvoiceCategory: pc.InvoiceCategory,
		InvoiceDueDay:   pc.InvoiceDueDay,
		CardDueDays:     pc.CardDueDays,
	}
	d.titheCat = findCategoryByName(d.cats, pc.TitheCategory)
	d.invoiceCat = findCategoryByName(d.cats, pc.InvoiceCategory)

	return d, nil
}

// generatedFor 目标月份的生成计划：账单 + 十一奉献，再补上
// 触发条件已消失但仍然权威的已结算生成行
func (d *planningData) generatedFor(m engine.Month) []models.Obligation {
	out := engine.GenerateInvoices(d.purchases, d.settledGen, m, d.invoiceCat, d.cfg)
	out = append(out, engine.GenerateTithes(d.txs, d.cats, d.settledGen, d.titheCat, d.cfg)...)

	seen := make(map[string]bool, len(out))
	for _, o := range out {
		seen[o.ID] = true
	}
	for id, o := range d.settledGen {
		if !seen[id] && m.Contains(o.DueDate) {
			out = append(out, o)
		}
	}
	return out
}

// monthParam 解析 month 查询参数
func monthParam(c *gin.Context) (engine.Month, bool) {
	monthStr := c.Query("month")
	if monthStr == "" {
		BadRequest(c, "month参数必填（格式：2024-05）")
		return engine.Month{}, false
	}
	m, err := engine.ParseMonth(monthStr)
	if err != nil {
		BadRequest(c, err.Error())
		return engine.Month{}, false
	}
	return m, true
}

// respondCached 规划读接口的缓存出口：命中直接回放，未命中计算后写入
func respondCached(c *gin.Context, key string, compute func() (interface{}, error)) {
	ctx := c.Request.Context()
	if cached := database.CacheGetPlanning(ctx, key); cached != "" {
		Success(c, json.RawMessage(cached))
		return
	}

	data, err := compute()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	if database.CacheEnabled() {
		if raw, err := json.Marshal(data); err == nil {
			database.CacheSetPlanning(ctx, key, string(raw))
		}
	}
	Success(c, data)
}

// Summary 月度汇总
// @Summary 获取月度汇总
// @Description 实际收入/支出合计取台账流水；计划收入/支出只统计待处理的手工计划，
// @Description 生成计划不计入汇总（但会出现在合并计划列表和余额曲线里）。
// @Tags 规划
// @Produce json
// @Param month query string true "月份 (2024-05)"
// @Success 200 {object} Response{data=engine.Summary} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/planning/summary [get]
func (h *PlanningHandler) Summary(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}

	respondCached(c, "summary:"+m.String(), func() (interface{}, error) {
		d, err := loadPlanningData()
		if err != nil {
			return nil, err
		}
		return engine.MonthlySummary(d.txs, d.manual, m), nil
	})
}

// Obligations 合并计划列表
// @Summary 获取月度合并计划列表
// @Description 手工计划与生成计划（账单、十一奉献）合并后的月度列表，
// @Description 含待处理和已结算，按到期日升序。
// @Tags 规划
// @Produce json
// @Param month query string true "月份 (2024-05)"
// @Success 200 {object} Response{data=[]models.Obligation} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/planning/obligations [get]
func (h *PlanningHandler) Obligations(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}

	respondCached(c, "obligations:"+m.String(), func() (interface{}, error) {
		d, err := loadPlanningData()
		if err != nil {
			return nil, err
		}
		return engine.MergedObligations(d.manual, d.generatedFor(m), m), nil
	})
}

// BalanceSeries 日度余额曲线
// @Summary 获取日度余额曲线
// @Description 期初余额 + 每日实际流水与待处理计划的累计余额，按展示需要抽稀到至多 12 个点。
// @Tags 规划
// @Produce json
// @Param month query string true "月份 (2024-05)"
// @Success 200 {object} Response{data=[]engine.BalancePoint} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/planning/balance-series [get]
func (h *PlanningHandler) BalanceSeries(c *gin.Context) {
	m, ok := monthParam(c)
	if !ok {
		return
	}

	respondCached(c, "balance:"+m.String(), func() (interface{}, error) {
		d, err := loadPlanningData()
		if err != nil {
			return nil, err
		}
		merged := engine.MergedObligations(d.manual, d.generatedFor(m), m)
		return engine.BalanceSeries(d.txs, merged, m), nil
	})
}
