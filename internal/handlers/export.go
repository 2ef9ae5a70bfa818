package handlers

import (
	"log"
	"net/http"

	"barge-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Barge Logs"

// ExportLogs streams the current log list as an .xlsx workbook: one sheet,
// a header row, then one row per entry in the table's fixed column order,
// with the same placeholder the table shows for missing values.
func (h *Handler) ExportLogs(c *gin.Context) {
	logs, err := h.api.Logs(c.Request.Context())
	if err != nil {
		log.Printf("[export] fetch logs failed: %v", err)
		flash(c, "error", "Failed to export logs")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		log.Printf("[export] rename sheet failed: %v", err)
		flash(c, "error", "Failed to export logs")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	header := make([]interface{}, len(models.LogColumns))
	for i, col := range models.LogColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		log.Printf("[export] write header failed: %v", err)
		flash(c, "error", "Failed to export logs")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	for i, entry := range logs {
		cells := entry.Cells()
		row := make([]interface{}, len(cells))
		for j, cell := range cells {
			row[j] = cell
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			continue
		}
		if err := f.SetSheetRow(exportSheet, start, &row); err != nil {
			log.Printf("[export] write row %d failed: %v", i+2, err)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="barge_logs.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[export] write workbook failed: %v", err)
	}
}
