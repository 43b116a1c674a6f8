package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListLeaveRequests returns every leave request
// (GET /leave)
func (h *Handler) ListLeaveRequests(c *gin.Context) {
	records, err := h.leaveSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// SubmitLeaveRequest files a new leave request
// (POST /leave)
func (h *Handler) SubmitLeaveRequest(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.leaveSrv.Submit(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateLeaveRequest edits a pending leave request
// (PUT /leave/:id)
func (h *Handler) UpdateLeaveRequest(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}
	input["id"] = c.Param("id")

	rec, err := h.leaveSrv.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteLeaveRequest withdraws a pending leave request
// (DELETE /leave/:id)
func (h *Handler) DeleteLeaveRequest(c *gin.Context) {
	if err := h.leaveSrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveLeaveRequest approves a pending leave request
// (POST /leave/:id/approve)
func (h *Handler) ApproveLeaveRequest(c *gin.Context) {
	rec, err := h.leaveSrv.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RejectLeaveRequest rejects a pending leave request
// (POST /leave/:id/reject)
func (h *Handler) RejectLeaveRequest(c *gin.Context) {
	rec, err := h.leaveSrv.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
