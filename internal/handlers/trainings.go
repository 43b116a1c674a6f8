package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListTrainings returns every training joined with the member's name
// (GET /trainings)
func (h *Handler) ListTrainings(c *gin.Context) {
	views, err := h.trainingSrv.GetTrainingsWithPersonnel(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]v1.TrainingView, 0, len(views))
	for _, v := range views {
		out = append(out, v1.NewTrainingView(v))
	}
	c.JSON(http.StatusOK, out)
}

// AddTraining records a completed training
// (POST /trainings)
func (h *Handler) AddTraining(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.trainingSrv.Add(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateTraining updates a training in place
// (PUT /trainings/:id)
func (h *Handler) UpdateTraining(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}
	input["id"] = c.Param("id")

	rec, err := h.trainingSrv.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteTraining removes a training entry
// (DELETE /trainings/:id)
func (h *Handler) DeleteTraining(c *gin.Context) {
	if err := h.trainingSrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
