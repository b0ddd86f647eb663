package api

import (
	"strconv"

	"lucia/database"
	"lucia/models"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler 分期购买处理器
type PurchaseHandler struct{}

// NewPurchaseHandler 创建分期购买处理器
func NewPurchaseHandler() *PurchaseHandler {
	return &PurchaseHandler{}
}

// CreatePurchaseRequest 创建分期购买请求
type CreatePurchaseRequest struct {
	Label            string  `json:"label" binding:"required,min=1,max=100" example:"手机"`
	CardName         string  `json:"card_name" binding:"required,min=1,max=50" example:"招商银行"`
	TotalAmount      float64 `json:"total_amount" binding:"required,gt=0" example:"3000"`
	InstallmentCount int     `json:"installment_count" binding:"required,min=1" example:"12"`
	PurchaseDate     string  `json:"purchase_date" binding:"required" example:"2024-01-15"`
}

// UpdatePurchaseRequest 更新分期购买请求
type UpdatePurchaseRequest struct {
	Label            string  `json:"label" binding:"omitempty,min=1,max=100"`
	CardName         string  `json:"card_name" binding:"omitempty,min=1,max=50"`
	TotalAmount      float64 `json:"total_amount" binding:"omitempty,gt=0"`
	InstallmentCount int     `json:"installment_count" binding:"omitempty,min=1"`
	PurchaseDate     string  `json:"purchase_date"`
}

// Create 创建分期购买
// @Summary 创建分期购买
// @Description 登记一笔信用卡分期购买，账单生成器按期数均摊到后续月份
// @Tags 分期购买
// @Accept json
// @Produce json
// @Param request body CreatePurchaseRequest true "分期购买信息"
// @Success 200 {object} Response{data=models.InstallmentPurchase} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	purchaseDate, err := parseDay(req.PurchaseDate)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	p := models.InstallmentPurchase{
		Label:            req.Label,
		CardName:         req.CardName,
		TotalAmount:      req.TotalAmount,
		InstallmentCount: req.InstallmentCount,
		PurchaseDate:     purchaseDate,
	}

	if err := database.DB.Create(&p).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建分期购买失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "创建成功", p)
}

// List 获取分期购买列表
// @Summary 获取分期购买列表
// @Description 列出所有分期购买，按购买日期倒序
// @Tags 分期购买
// @Produce json
// @Success 200 {object} Response{data=[]models.InstallmentPurchase} "获取成功"
// @Router /api/v1/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	var list []models.InstallmentPurchase
	if err := database.DB.Order("purchase_date DESC, id DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Update 更新分期购买
// @Summary 更新分期购买
// @Description 更新一笔分期购买；后续月份的账单计划会按新数据重新推导
// @Tags 分期购买
// @Accept json
// @Produce json
// @Param id path int true "分期购买ID"
// @Param request body UpdatePurchaseRequest true "分期购买信息"
// @Success 200 {object} Response{data=models.InstallmentPurchase} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/purchases/{id} [put]
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var p models.InstallmentPurchase
	if err := database.DB.First(&p, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Label != "" {
		updates["label"] = req.Label
	}
	if req.CardName != "" {
		updates["card_name"] = req.CardName
	}
	if req.TotalAmount > 0 {
		updates["total_amount"] = req.TotalAmount
	}
	if req.InstallmentCount > 0 {
		updates["installment_count"] = req.InstallmentCount
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := parseDay(req.PurchaseDate)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["purchase_date"] = purchaseDate
	}

	if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&p, p.ID)
	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "更新成功", p)
}

// Delete 删除分期购买
// @Summary 删除分期购买
// @Description 删除一笔分期购买；它驱动的待处理账单计划随之消失，已结算的账单行保留
// @Tags 分期购买
// @Produce json
// @Param id path int true "分期购买ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var p models.InstallmentPurchase
	if err := database.DB.First(&p, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&p).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "删除成功", nil)
}
