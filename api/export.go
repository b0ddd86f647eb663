package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"lucia/database"
	"lucia/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 台账导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// 带类别名称的流水行（导出用）
type transactionWithCategory struct {
	models.Transaction
	CategoryName string
}

// 按时间范围查询流水并带出类别名称
func queryExportRows(c *gin.Context) ([]transactionWithCategory, string, string, bool) {
	startTimeStr := c.Query("start_time")
	endTimeStr := c.Query("end_time")

	if startTimeStr == "" || endTimeStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return nil, "", "", false
	}

	startTime, err := parseDay(startTimeStr)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return nil, "", "", false
	}

	endTime, err := parseDay(endTimeStr)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return nil, "", "", false
	}
	endTime = endTime.Add(24*time.Hour - time.Second)

	var rows []transactionWithCategory
	if err := database.DB.Model(&models.Transaction{}).
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON transactions.category_id = categories.id").
		Where("transactions.tx_date >= ? AND transactions.tx_date <= ?", startTime, endTime).
		Order("transactions.tx_date DESC").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, "", "", false
	}
	return rows, startTimeStr, endTimeStr, true
}

// 方向的中文展示
func kindLabel(kind string) string {
	if kind == models.KindIncome {
		return "收入"
	}
	return "支出"
}

// ExportCSV 导出台账为 CSV
// @Summary 导出台账为 CSV
// @Description 按时间范围导出流水为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, startTimeStr, endTimeStr, ok := queryExportRows(c)
	if !ok {
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "金额", "方向", "类别", "描述", "记账日期", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			fmt.Sprintf("%.2f", row.Amount),
			kindLabel(row.Kind),
			row.CategoryName,
			row.Description,
			row.TxDate.Format("2006-01-02"),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("transactions_%s_%s.csv", startTimeStr, endTimeStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出台账为 Excel
// @Summary 导出台账为 Excel
// @Description 按时间范围导出流水为 xlsx 文件，带合计行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	rows, startTimeStr, endTimeStr, ok := queryExportRows(c)
	if !ok {
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "台账流水"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "F", 15)
	f.SetColWidth(sheetName, "G", "G", 20)

	// 写入表头
	headers := []string{"ID", "金额", "方向", "类别", "描述", "记账日期", "创建时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据，顺便算带符号合计
	var netAmount float64
	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), kindLabel(row.Kind))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), row.CategoryName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), row.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), row.TxDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), row.CreatedAt.Format("2006-01-02 15:04:05"))

		// 设置数据样式
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("G%d", r), dataStyle)
		netAmount += row.Signed()
	}

	// 添加汇总行
	summaryRow := len(rows) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "净额")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), netAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(rows)))
	f.MergeCell(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("台账流水_%s_%s.xlsx", startTimeStr, endTimeStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
