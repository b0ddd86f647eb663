package api

import (
	"strconv"
	"strings"

	"lucia/database"
	"lucia/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 收支类别管理
type CategoryHandler struct{}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=50"`
	Kind          string `json:"kind" binding:"required,oneof=income expense"`
	TitheEligible bool   `json:"tithe_eligible"`
	Sort          int    `json:"sort"`
	Color         string `json:"color" binding:"omitempty,max=20"` // 颜色代码，如 #ef4444
}

// CategoryUpdateRequest 更新类别请求
type CategoryUpdateRequest struct {
	Name          string  `json:"name" binding:"omitempty,min=1,max=50"`
	TitheEligible *bool   `json:"tithe_eligible"`
	Sort          *int    `json:"sort"`
	Color         *string `json:"color" binding:"omitempty,max=20"`
}

// List 列出所有类别
// @Summary 获取类别列表
// @Description 获取所有收支类别，支持按方向筛选
// @Tags 类别
// @Produce json
// @Param kind query string false "方向（income/expense）"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Category{})
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var list []models.Category
	if err := query.Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 创建新的收支类别，收入类别可标记是否计入十一奉献计提基数
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	// 唯一性
	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "类别名称已存在")
		return
	}

	color := req.Color
	if color == "" {
		color = "#64748b" // 默认灰色
	}
	cat := models.Category{
		Name:          req.Name,
		Kind:          req.Kind,
		TitheEligible: req.TitheEligible,
		Sort:          req.Sort,
		Color:         color,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "创建成功", cat)
}

// Update 更新类别
// @Summary 更新类别
// @Description 更新指定类别；方向不可修改
// @Tags 类别
// @Accept json
// @Produce json
// @Param id path int true "类别ID"
// @Param request body CategoryUpdateRequest true "更新的类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			BadRequest(c, "名称不能为空")
			return
		}
		var existing models.Category
		if err := database.DB.Where("name = ? AND id != ?", req.Name, cat.ID).First(&existing).Error; err == nil {
			BadRequest(c, "类别名称已存在")
			return
		}
		updates["name"] = req.Name
	}
	if req.TitheEligible != nil {
		updates["tithe_eligible"] = *req.TitheEligible
	}
	if req.Sort != nil {
		updates["sort"] = *req.Sort
	}
	if req.Color != nil {
		color := *req.Color
		if color == "" {
			color = "#64748b" // 默认灰色
		}
		updates["color"] = color
	}
	if len(updates) == 0 {
		SuccessWithMessage(c, "无需更新", nil)
		return
	}

	if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	database.DB.First(&cat, cat.ID)
	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "更新成功", cat)
}

// Delete 软删除类别
// @Summary 删除类别
// @Description 软删除指定类别；历史流水仍保留原类别ID
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}
	if err := database.DB.Delete(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "删除成功", nil)
}
