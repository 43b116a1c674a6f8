package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListPersonnel returns every personnel record
// (GET /personnel)
func (h *Handler) ListPersonnel(c *gin.Context) {
	records, err := h.personnelSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPersonnel returns a single personnel record
// (GET /personnel/:id)
func (h *Handler) GetPersonnel(c *gin.Context) {
	rec, err := h.personnelSrv.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RegisterPersonnel creates a member and returns the generated
// credentials alongside the record
// (POST /personnel)
func (h *Handler) RegisterPersonnel(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, creds, err := h.personnelSrv.Register(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v1.RegisterResponse{
		Personnel:   rec,
		Credentials: v1.NewCredentials(*creds),
	})
}

// UpdatePersonnel updates a personnel record in place
// (PUT /personnel/:id)
func (h *Handler) UpdatePersonnel(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}
	input["id"] = c.Param("id")

	rec, err := h.personnelSrv.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeletePersonnel removes a personnel record
// (DELETE /personnel/:id)
func (h *Handler) DeletePersonnel(c *gin.Context) {
	if err := h.personnelSrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PromotePersonnel changes a member's rank
// (POST /personnel/:id/promote)
func (h *Handler) PromotePersonnel(c *gin.Context) {
	var req v1.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "rank is required"})
		return
	}

	rec, err := h.personnelSrv.Promote(c.Request.Context(), c.Param("id"), req.Rank)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetPersonnelTrainings returns the trainings of one member
// (GET /personnel/:id/trainings)
func (h *Handler) GetPersonnelTrainings(c *gin.Context) {
	id, err := models.CoerceKey(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	records, err := h.trainingSrv.GetTrainingsByPersonnel(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPersonnelLeave returns the leave requests of one member
// (GET /personnel/:id/leave)
func (h *Handler) GetPersonnelLeave(c *gin.Context) {
	id, err := models.CoerceKey(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	records, err := h.leaveSrv.ListByPersonnel(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPersonnelMedicalRecords returns the medical record metadata of one
// member
// (GET /personnel/:id/medical-records)
func (h *Handler) GetPersonnelMedicalRecords(c *gin.Context) {
	id, err := models.CoerceKey(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	records, err := h.medicalSrv.ListByPersonnel(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]v1.MedicalRecord, 0, len(records))
	for _, m := range records {
		out = append(out, v1.NewMedicalRecord(m))
	}
	c.JSON(http.StatusOK, out)
}
