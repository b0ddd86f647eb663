package api

import (
	"strconv"

	"lucia/database"
	"lucia/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// SettingHandler 应用设置处理器
type SettingHandler struct{}

// NewSettingHandler 创建设置处理器
func NewSettingHandler() *SettingHandler {
	return &SettingHandler{}
}

// UpdateSettingsRequest 更新设置请求
type UpdateSettingsRequest struct {
	CalculateTithing *bool `json:"calculate_tithing" binding:"required"`
}

// SettingsResponse 设置返回
type SettingsResponse struct {
	CalculateTithing bool `json:"calculate_tithing"`
}

// Get 获取设置
// @Summary 获取应用设置
// @Description 当前只有十一奉献开关
// @Tags 设置
// @Produce json
// @Success 200 {object} Response{data=SettingsResponse} "获取成功"
// @Router /api/v1/settings [get]
func (h *SettingHandler) Get(c *gin.Context) {
	var setting models.Setting
	enabled := false
	if err := database.DB.Where("`key` = ?", models.SettingCalculateTithing).First(&setting).Error; err == nil {
		enabled, _ = strconv.ParseBool(setting.Value)
	}
	Success(c, SettingsResponse{CalculateTithing: enabled})
}

// Update 更新设置
// @Summary 更新应用设置
// @Description 开关十一奉献计划的自动生成
// @Tags 设置
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "设置项"
// @Success 200 {object} Response{data=SettingsResponse} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/settings [put]
func (h *SettingHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	setting := models.Setting{
		Key:   models.SettingCalculateTithing,
		Value: strconv.FormatBool(*req.CalculateTithing),
	}
	if err := database.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存设置失败"))
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	SuccessWithMessage(c, "保存成功", SettingsResponse{CalculateTithing: *req.CalculateTithing})
}
