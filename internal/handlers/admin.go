package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TriggerSync runs a reconciliation pass over the medical records and
// the personnel-embedded documents
// (POST /admin/sync)
func (h *Handler) TriggerSync(c *gin.Context) {
	report, err := h.reconciler.Sync(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewSyncReport(*report))
}

// TriggerMigration runs the one-time backfill of the medical records
// collection from personnel-embedded documents
// (POST /admin/migrate)
func (h *Handler) TriggerMigration(c *gin.Context) {
	report, err := h.reconciler.Migrate(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewSyncReport(*report))
}

// ExportPersonnelRoster downloads the personnel roster as a spreadsheet
// (GET /admin/exports/personnel)
func (h *Handler) ExportPersonnelRoster(c *gin.Context) {
	buf, filename, err := h.reportSrv.ExportPersonnelRoster(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportInventory downloads the equipment inventory as a spreadsheet
// (GET /admin/exports/inventory)
func (h *Handler) ExportInventory(c *gin.Context) {
	buf, filename, err := h.reportSrv.ExportInventory(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
