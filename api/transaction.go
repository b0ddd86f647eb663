package api

import (
	"strconv"
	"time"

	"lucia/database"
	"lucia/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 台账流水处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建台账流水处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建流水请求
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"99.99"`
	Kind        string  `json:"kind" binding:"required,oneof=income expense" example:"expense"`
	CategoryID  uint    `json:"category_id" binding:"required" example:"1"`
	Description string  `json:"description" example:"午餐"`
	TxDate      string  `json:"tx_date" binding:"required" example:"2024-01-15"`
}

// UpdateTransactionRequest 更新流水请求
type UpdateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"omitempty,gt=0" example:"99.99"`
	Kind        string  `json:"kind" binding:"omitempty,oneof=income expense" example:"expense"`
	CategoryID  uint    `json:"category_id" example:"1"`
	Description string  `json:"description" example:"午餐"`
	TxDate      string  `json:"tx_date" example:"2024-01-15"`
}

// TransactionListRequest 流水列表请求
type TransactionListRequest struct {
	Page       int    `form:"page" example:"1"`
	PageSize   int    `form:"page_size" example:"10"`
	Kind       string `form:"kind" example:"expense"`
	CategoryID uint   `form:"category_id" example:"1"`
	StartTime  string `form:"start_time" example:"2024-01-01"`
	EndTime    string `form:"end_time" example:"2024-12-31"`
}

// BatchCreateTransactionsRequest 批量创建流水请求（导入/批量编辑界面使用）
type BatchCreateTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// BatchDeleteTransactionsRequest 批量删除流水请求
type BatchDeleteTransactionsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// RecategorizeTransactionsRequest 批量改类别请求
type RecategorizeTransactionsRequest struct {
	IDs        []uint `json:"ids" binding:"required,min=1"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

// 校验类别存在并返回（来源于数据库）
func loadCategory(id uint) (*models.Category, error) {
	var cat models.Category
	if err := database.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// 解析按天的日期字段
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// Create 创建流水
// @Summary 创建台账流水
// @Description 记录一条实际发生的收入或支出
// @Tags 台账
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "流水信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, err := loadCategory(req.CategoryID); err != nil {
		BadRequest(c, "无效的类别，请先在类别管理中维护")
		return
	}

	txDate, err := parseDay(req.TxDate)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	tx := models.Transaction{
		Amount:      req.Amount,
		Kind:        req.Kind,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		TxDate:      txDate,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建流水失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "创建成功", tx)
}

// List 获取流水列表
// @Summary 获取台账流水列表
// @Description 分页获取流水，支持按方向、类别和时间范围筛选
// @Tags 台账
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param kind query string false "方向（income/expense）"
// @Param category_id query int false "类别ID"
// @Param start_time query string false "开始日期 (2024-01-01)"
// @Param end_time query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "获取成功"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Transaction{})

	if req.Kind != "" {
		query = query.Where("kind = ?", req.Kind)
	}
	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	// 时间范围筛选
	if req.StartTime != "" {
		if t, err := parseDay(req.StartTime); err == nil {
			query = query.Where("tx_date >= ?", t)
		}
	}
	if req.EndTime != "" {
		if t, err := parseDay(req.EndTime); err == nil {
			// 包含结束日期当天
			t = t.Add(24*time.Hour - time.Second)
			query = query.Where("tx_date <= ?", t)
		}
	}

	// 获取总数
	var total int64
	query.Count(&total)

	// 获取列表
	var txs []models.Transaction
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("tx_date DESC, id DESC").Offset(offset).Limit(req.PageSize).Find(&txs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     txs,
	})
}

// Get 获取单条流水
// @Summary 获取单条流水
// @Description 根据ID获取流水详情
// @Tags 台账
// @Produce json
// @Param id path int true "流水ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.First(&tx, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, tx)
}

// Update 更新流水
// @Summary 更新流水
// @Description 更新指定的流水记录
// @Tags 台账
// @Accept json
// @Produce json
// @Param id path int true "流水ID"
// @Param request body UpdateTransactionRequest true "流水信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.First(&tx, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 更新字段
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
	if req.TxDate != "" {
		txDate, err := parseDay(req.TxDate)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["tx_date"] = txDate
	}

	if err := database.DB.Model(&tx).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(&tx, tx.ID)
	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "更新成功", tx)
}

// Delete 删除流水
// @Summary 删除流水
// @Description 删除指定的流水记录
// @Tags 台账
// @Produce json
// @Param id path int true "流水ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.First(&tx, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "删除成功", nil)
}

// BatchCreate 批量创建流水
// @Summary 批量创建流水
// @Description 一次写入多条流水，供导入/批量编辑界面使用。任意一条校验失败则整批拒绝。
// @Tags 台账
// @Accept json
// @Produce json
// @Param request body BatchCreateTransactionsRequest true "流水列表"
// @Success 200 {object} Response{data=[]models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions/batch [post]
func (h *TransactionHandler) BatchCreate(c *gin.Context) {
	var req BatchCreateTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	txs := make([]models.Transaction, 0, len(req.Transactions))
	for i, item := range req.Transactions {
		txDate, err := parseDay(item.TxDate)
		if err != nil {
			BadRequest(c, "第 "+strconv.Itoa(i+1)+" 条日期格式错误，应为: 2006-01-02")
			return
		}
		if _, err := loadCategory(item.CategoryID); err != nil {
			BadRequest(c, "第 "+strconv.Itoa(i+1)+" 条类别无效")
			return
		}
		txs = append(txs, models.Transaction{
			Amount:      item.Amount,
			Kind:        item.Kind,
			CategoryID:  item.CategoryID,
			Description: item.Description,
			TxDate:      txDate,
		})
	}

	if err := database.DB.Create(&txs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "批量创建失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "创建成功", txs)
}

// BatchDelete 批量删除流水
// @Summary 批量删除流水
// @Description 按ID列表删除多条流水
// @Tags 台账
// @Accept json
// @Produce json
// @Param request body BatchDeleteTransactionsRequest true "ID列表"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions/batch-delete [post]
func (h *TransactionHandler) BatchDelete(c *gin.Context) {
	var req BatchDeleteTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if err := database.DB.Delete(&models.Transaction{}, req.IDs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "批量删除失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "删除成功", gin.H{"count": len(req.IDs)})
}

// Recategorize 批量改类别
// @Summary 批量修改流水类别
// @Description 把一批流水改到指定类别
// @Tags 台账
// @Accept json
// @Produce json
// @Param request body RecategorizeTransactionsRequest true "ID列表和目标类别"
// @Success 200 {object} Response "修改成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions/recategorize [post]
func (h *TransactionHandler) Recategorize(c *gin.Context) {
	var req RecategorizeTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, err := loadCategory(req.CategoryID); err != nil {
		BadRequest(c, "无效的类别，请先在类别管理中维护")
		return
	}

	result := database.DB.Model(&models.Transaction{}).
		Where("id IN ?", req.IDs).
		Update("category_id", req.CategoryID)
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "批量修改失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "修改成功", gin.H{"count": result.RowsAffected})
}
