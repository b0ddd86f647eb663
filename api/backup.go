package api

import (
	"encoding/json"
	"io"
	"net/http"

	"lucia/database"
	"lucia/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BackupHandler 整库备份处理器
type BackupHandler struct{}

// NewBackupHandler 创建备份处理器
func NewBackupHandler() *BackupHandler {
	return &BackupHandler{}
}

// BackupDocument 备份文档：所有集合打包成一个 JSON
type BackupDocument struct {
	Transactions []models.Transaction         `json:"transactions"`
	Obligations  []models.Obligation          `json:"obligations"`
	Purchases    []models.InstallmentPurchase `json:"purchases"`
	Categories   []models.Category            `json:"categories"`
	Settings     []models.Setting             `json:"settings"`
}

// Export 导出整库备份
// @Summary 导出整库备份
// @Description 把所有集合导出为一个 JSON 文档
// @Tags 备份
// @Produce json
// @Success 200 {object} BackupDocument "导出成功"
// @Router /api/v1/backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	var doc BackupDocument
	if err := database.DB.Find(&doc.Transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}
	if err := database.DB.Find(&doc.Obligations).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}
	if err := database.DB.Find(&doc.Purchases).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}
	if err := database.DB.Find(&doc.Categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}
	if err := database.DB.Find(&doc.Settings).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=lucia-backup.json")
	c.JSON(http.StatusOK, doc)
}

// Import 导入整库备份
// @Summary 导入整库备份
// @Description 解析整个 JSON 文档并整体替换所有集合（不合并）。解析失败时不做任何修改，
// @Description 返回 success=false。替换在一个数据库事务里完成，不会出现半套数据。
// @Tags 备份
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "导入结果 {success: bool}"
// @Router /api/v1/backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "读取请求失败"})
		return
	}

	var doc BackupDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		// 解析失败：不做任何修改
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "备份文档格式错误"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 整体替换：先清空再写入（含软删除行）
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Obligation{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.InstallmentPurchase{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Setting{}).Error; err != nil {
			return err
		}

		if len(doc.Transactions) > 0 {
			if err := tx.Create(&doc.Transactions).Error; err != nil {
				return err
			}
		}
		if len(doc.Obligations) > 0 {
			if err := tx.Create(&doc.Obligations).Error; err != nil {
				return err
			}
		}
		if len(doc.Purchases) > 0 {
			if err := tx.Create(&doc.Purchases).Error; err != nil {
				return err
			}
		}
		if len(doc.Categories) > 0 {
			if err := tx.Create(&doc.Categories).Error; err != nil {
				return err
			}
		}
		if len(doc.Settings) > 0 {
			if err := tx.Create(&doc.Settings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": SafeErrorMessage(err, "导入失败")})
		return
	}

	database.InvalidatePlanningCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "导入成功"})
}
