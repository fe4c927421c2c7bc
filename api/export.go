package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"fintrack/middleware"
	"fintrack/models"
	"fintrack/service"
)

// ExportHandler serves income exports in CSV, JSON and Excel form. The same
// optional start/end range as the list endpoint applies.
type ExportHandler struct {
	incomes *service.IncomeService
}

// NewExportHandler creates the export handler.
func NewExportHandler(incomes *service.IncomeService) *ExportHandler {
	return &ExportHandler{incomes: incomes}
}

func (h *ExportHandler) rangedIncomes(c *gin.Context) ([]models.Income, bool) {
	userID := middleware.GetCurrentUserID(c)
	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	incomes, err := h.incomes.List(userID, start, end)
	if err != nil {
		Fail(c, err)
		return nil, false
	}
	return incomes, true
}

func exportFilename(c *gin.Context, ext string) string {
	stamp := time.Now().Format("2006-01-02")
	if s, e := c.Query("start"), c.Query("end"); s != "" && e != "" {
		stamp = s + "_" + e
	}
	return fmt.Sprintf("incomes_%s.%s", stamp, ext)
}

// CSV exports the incomes as a CSV attachment.
// @Summary Export incomes as CSV
// @Tags export
// @Produce text/csv
// @Param start query string false "Range start (2024-01-01)"
// @Param end query string false "Range end, inclusive (2024-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	incomes, ok := h.rangedIncomes(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel detects UTF-8.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"ID", "Amount", "Date", "Source", "Description", "Category", "Created"}); err != nil {
		Fail(c, err)
		return
	}
	for _, in := range incomes {
		row := []string{
			fmt.Sprintf("%d", in.ID),
			fmt.Sprintf("%.2f", in.Amount),
			in.Date.Format("2006-01-02 15:04:05"),
			in.Source,
			in.Description,
			in.Category.Name,
			in.CreationDate.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			Fail(c, err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(c, "csv")))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// JSON exports the incomes with a summary envelope.
// @Summary Export incomes as JSON
// @Tags export
// @Produce json
// @Param start query string false "Range start (2024-01-01)"
// @Param end query string false "Range end, inclusive (2024-12-31)"
// @Success 200 {object} map[string]interface{} "Totals plus the income list"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/export/json [get]
func (h *ExportHandler) JSON(c *gin.Context) {
	incomes, ok := h.rangedIncomes(c)
	if !ok {
		return
	}

	var totalAmount float64
	for _, in := range incomes {
		totalAmount += in.Amount
	}

	OK(c, gin.H{
		"start":        c.Query("start"),
		"end":          c.Query("end"),
		"total_count":  len(incomes),
		"total_amount": totalAmount,
		"incomes":      incomes,
	})
}

// XLSX exports the incomes as an Excel workbook.
// @Summary Export incomes as Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start query string false "Range start (2024-01-01)"
// @Param end query string false "Range end, inclusive (2024-12-31)"
// @Success 200 {file} file "Excel file"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/export/xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	incomes, ok := h.rangedIncomes(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Incomes"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 20)
	f.SetColWidth(sheetName, "D", "D", 25)
	f.SetColWidth(sheetName, "E", "E", 40)
	f.SetColWidth(sheetName, "F", "F", 18)

	headers := []string{"ID", "Amount", "Date", "Source", "Description", "Category"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount float64
	for i, in := range incomes {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), in.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), in.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), in.Date.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), in.Source)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), in.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), in.Category.Name)
		totalAmount += in.Amount
	}

	summaryRow := len(incomes) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("%d records", len(incomes)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(c, "xlsx")))

	if err := f.Write(c.Writer); err != nil {
		Fail(c, err)
		return
	}
}
