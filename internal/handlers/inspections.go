package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListInspections returns every inspection joined with equipment and
// inspector details
// (GET /inspections)
func (h *Handler) ListInspections(c *gin.Context) {
	views, err := h.inspectionSrv.GetInspectionsWithDetails(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]v1.InspectionView, 0, len(views))
	for _, v := range views {
		out = append(out, v1.NewInspectionView(v))
	}
	c.JSON(http.StatusOK, out)
}

// AddInspection records an equipment inspection
// (POST /inspections)
func (h *Handler) AddInspection(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.inspectionSrv.Add(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// DeleteInspection removes an inspection entry
// (DELETE /inspections/:id)
func (h *Handler) DeleteInspection(c *gin.Context) {
	if err := h.inspectionSrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRecentInspections returns inspections from the last 30 days
// (GET /inspections/recent)
func (h *Handler) GetRecentInspections(c *gin.Context) {
	records, err := h.inspectionSrv.GetRecentInspections(c.Request.Context(), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetInspectionsByEquipment returns the inspection history of one item
// (GET /inspections/equipment/:id)
func (h *Handler) GetInspectionsByEquipment(c *gin.Context) {
	id, err := models.CoerceKey(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	records, err := h.inspectionSrv.GetInspectionsByEquipment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetInspectionsByInspector returns inspections performed by one member
// (GET /inspections/inspector/:id)
func (h *Handler) GetInspectionsByInspector(c *gin.Context) {
	id, err := models.CoerceKey(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	records, err := h.inspectionSrv.GetInspectionsByInspector(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
