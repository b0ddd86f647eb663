package api

import (
	"log"

	"lucia/database"
	"lucia/engine"
	"lucia/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// ObligationHandler 计划收支处理器
type ObligationHandler struct{}

// NewObligationHandler 创建计划收支处理器
func NewObligationHandler() *ObligationHandler {
	return &ObligationHandler{}
}

// CreateObligationRequest 创建手工计划请求
type CreateObligationRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"1200"`
	Kind        string  `json:"kind" binding:"required,oneof=income expense" example:"expense"`
	CategoryID  uint    `json:"category_id" binding:"required" example:"4"`
	Description string  `json:"description" example:"房租"`
	DueDate     string  `json:"due_date" binding:"required" example:"2024-06-05"`
}

// RecurringObligationRequest 周期计划请求：模板 + 重复次数
type RecurringObligationRequest struct {
	CreateObligationRequest
	RepeatCount int `json:"repeat_count" binding:"gte=0" example:"11"`
}

// UpdateObligationRequest 更新手工计划请求
type UpdateObligationRequest struct {
	Amount      float64 `json:"amount" binding:"omitempty,gt=0" example:"1200"`
	Kind        string  `json:"kind" binding:"omitempty,oneof=income expense" example:"expense"`
	CategoryID  uint    `json:"category_id" example:"4"`
	Description string  `json:"description" example:"房租"`
	DueDate     string  `json:"due_date" example:"2024-06-05"`
}

// SettleObligationRequest 结算请求
// 生成计划在待处理阶段不落库，所以结算时要把整条计划随请求带上；
// 手工计划只认库里的行，请求里的金额等字段会被忽略。
type SettleObligationRequest struct {
	ID          string  `json:"id" binding:"required" example:"gen_tithe_2024-03"`
	Amount      float64 `json:"amount" binding:"omitempty,gt=0" example:"100"`
	Kind        string  `json:"kind" binding:"omitempty,oneof=income expense" example:"expense"`
	CategoryID  uint    `json:"category_id" example:"8"`
	Description string  `json:"description" example:"十一奉献 2024-03"`
	DueDate     string  `json:"due_date" example:"2024-03-10"`
}

// 由请求解析计划字段（生成计划的结算路径）
func (r SettleObligationRequest) toObligation() (models.Obligation, string) {
	if r.Amount <= 0 {
		return models.Obligation{}, "金额必须大于 0"
	}
	if !models.ValidKind(r.Kind) {
		return models.Obligation{}, "方向必须为 income 或 expense"
	}
	if r.CategoryID == 0 {
		return models.Obligation{}, "类别不能为空"
	}
	dueDate, err := parseDay(r.DueDate)
	if err != nil {
		return models.Obligation{}, "日期格式错误，应为: 2006-01-02"
	}
	return models.Obligation{
		ID:          r.ID,
		Amount:      r.Amount,
		Kind:        r.Kind,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		DueDate:     dueDate,
		Status:      models.StatusPending,
		IsGenerated: true,
	}, ""
}

// Create 创建手工计划
// @Summary 创建手工计划
// @Description 新建一条待处理的计划收支
// @Tags 计划
// @Accept json
// @Produce json
// @Param request body CreateObligationRequest true "计划信息"
// @Success 200 {object} Response{data=models.Obligation} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/obligations [post]
func (h *ObligationHandler) Create(c *gin.Context) {
	var req CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, err := loadCategory(req.CategoryID); err != nil {
		BadRequest(c, "无效的类别，请先在类别管理中维护")
		return
	}

	dueDate, err := parseDay(req.DueDate)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	o := models.Obligation{
		ID:          engine.NewManualID(),
		Amount:      req.Amount,
		Kind:        req.Kind,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      models.StatusPending,
	}

	if err := database.DB.Create(&o).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建计划失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "创建成功", o)
}

// CreateRecurring 创建周期计划
// @Summary 创建周期计划
// @Description 把一条模板展开为 repeat_count+1 条相互独立的计划，到期日逐月推进
// @Tags 计划
// @Accept json
// @Produce json
// @Param request body RecurringObligationRequest true "模板和重复次数"
// @Success 200 {object} Response{data=[]models.Obligation} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/obligations/recurring [post]
func (h *ObligationHandler) CreateRecurring(c *gin.Context) {
	var req RecurringObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, err := loadCategory(req.CategoryID); err != nil {
		BadRequest(c, "无效的类别，请先在类别管理中维护")
		return
	}

	dueDate, err := parseDay(req.DueDate)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	tpl := models.Obligation{
		Amount:      req.Amount,
		Kind:        req.Kind,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		DueDate:     dueDate,
	}

	out, err := engine.ExpandRecurring(tpl, req.RepeatCount)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := database.DB.Create(&out).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建周期计划失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "创建成功", out)
}

// List 获取手工计划列表
// @Summary 获取计划列表（仅库内行）
// @Description 列出库里的计划行：手工计划和已结算的生成计划。待处理的生成计划请走 /planning/obligations。
// @Tags 计划
// @Produce json
// @Param month query string false "月份筛选 (2024-05)"
// @Param status query string false "状态筛选 (pending/settled)"
// @Success 200 {object} Response{data=[]models.Obligation} "获取成功"
// @Router /api/v1/obligations [get]
func (h *ObligationHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Obligation{})

	if monthStr := c.Query("month"); monthStr != "" {
		m, err := engine.ParseMonth(monthStr)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		query = query.Where("due_date >= ? AND due_date < ?", m.First(), m.AddMonths(1).First())
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var list []models.Obligation
	if err := query.Order("due_date ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, list)
}

// Update 更新手工计划
// @Summary 更新手工计划
// @Description 更新一条待处理的手工计划；生成计划不可编辑
// @Tags 计划
// @Accept json
// @Produce json
// @Param id path string true "计划ID"
// @Param request body UpdateObligationRequest true "计划信息"
// @Success 200 {object} Response{data=models.Obligation} "更新成功"
// @Failure 400 {object} Response "请求参数错误或计划不可编辑"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/obligations/{id} [put]
func (h *ObligationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if engine.IsGeneratedID(id) {
		BadRequest(c, "生成计划不可直接编辑")
		return
	}

	var o models.Obligation
	if err := database.DB.Where("id = ?", id).First(&o).Error; err != nil {
		NotFound(c, "计划不存在")
		return
	}
	if o.Status == models.StatusSettled {
		BadRequest(c, "已结算的计划不可编辑，请先撤销结算")
		return
	}

	var req UpdateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.Kind != "" {
		updates["kind"] = req.Kind
	}
	if req.CategoryID > 0 {
		if _, err := loadCategory(req.CategoryID); err != nil {
			BadRequest(c, "无效的类别，请先在类别管理中维护")
			return
		}
		updates["category_id"] = req.CategoryID
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.DueDate != "" {
		dueDate, err := parseDay(req.DueDate)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["due_date"] = dueDate
	}

	if err := database.DB.Model(&o).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.Where("id = ?", id).First(&o)
	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "更新成功", o)
}

// Delete 删除手工计划
// @Summary 删除手工计划
// @Description 删除一条手工计划；生成计划不可删除（撤销结算即可让它回到待处理）
// @Tags 计划
// @Produce json
// @Param id path string true "计划ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "计划不可删除"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/obligations/{id} [delete]
func (h *ObligationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if engine.IsGeneratedID(id) {
		BadRequest(c, "生成计划不可直接删除")
		return
	}

	var o models.Obligation
	if err := database.DB.Where("id = ?", id).First(&o).Error; err != nil {
		NotFound(c, "计划不存在")
		return
	}

	if err := database.DB.Delete(&o).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "删除成功", nil)
}

// Settle 结算计划
// @Summary 结算计划
// @Description 把一条待处理计划转为实际流水并标记已结算。流水写入成功后，
// @Description 计划行的落库失败只作为告警返回，不回滚流水（下次重载前以库内状态为准）。
// @Tags 计划
// @Accept json
// @Produce json
// @Param request body SettleObligationRequest true "待结算的计划"
// @Success 200 {object} Response{data=models.Obligation} "结算成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/obligations/settle [post]
func (h *ObligationHandler) Settle(c *gin.Context) {
	var req SettleObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var o models.Obligation
	if engine.IsGeneratedID(req.ID) {
		// 生成计划：待处理阶段没有库内行，以请求里的计划为准；
		// 若已有已结算行则拒绝重复结算
		var existing models.Obligation
		if err := database.DB.Where("id = ?", req.ID).First(&existing).Error; err == nil {
			if existing.Status == models.StatusSettled {
				BadRequest(c, "该计划已结算")
				return
			}
			o = existing
		} else {
			parsed, msg := req.toObligation()
			if msg != "" {
				BadRequest(c, msg)
				return
			}
			o = parsed
		}
	} else {
		// 手工计划：只认库内行
		if err := database.DB.Where("id = ?", req.ID).First(&o).Error; err != nil {
			NotFound(c, "计划不存在")
			return
		}
		if o.Status == models.StatusSettled {
			BadRequest(c, "该计划已结算")
			return
		}
	}

	// 1. 先写台账：结算对台账永远是追加
	tx := engine.SettlementTransaction(o)
	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "写入流水失败"))
		return
	}

	// 2. 再落计划行（同 id upsert）。失败不回滚流水，只作为告警带回
	o.Status = models.StatusSettled
	if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&o).Error; err != nil {
		log.Printf("警告: 结算后落库失败 (id=%s): %v", o.ID, err)
		database.InvalidatePlanningCache(c.Request.Context())
		SuccessWithWarning(c, "结算成功", "计划状态保存失败，重载后可能需要重新结算", o)
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "结算成功", o)
}

// Unsettle 撤销结算
// @Summary 撤销结算
// @Description 生成计划：整行删除，下一轮生成会按当前数据重新给出待处理实例；
// @Description 手工计划：状态改回待处理。结算时写入的流水不会被撤回，
// @Description 再次结算会产生第二条流水，需要用户自行在台账中删除旧流水。
// @Tags 计划
// @Produce json
// @Param id path string true "计划ID"
// @Success 200 {object} Response "撤销成功"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/obligations/{id}/unsettle [post]
func (h *ObligationHandler) Unsettle(c *gin.Context) {
	id := c.Param("id")

	var o models.Obligation
	if err := database.DB.Where("id = ?", id).First(&o).Error; err != nil {
		NotFound(c, "计划不存在")
		return
	}

	if engine.IsGeneratedID(id) {
		if err := database.DB.Where("id = ?", id).Delete(&models.Obligation{}).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "撤销失败"))
			return
		}
	} else {
		if err := database.DB.Model(&o).Update("status", models.StatusPending).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "撤销失败"))
			return
		}
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "撤销成功", nil)
}
