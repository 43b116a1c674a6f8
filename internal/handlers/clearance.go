package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListClearanceRequests returns every clearance request joined with the
// requesting member's name
// (GET /clearance)
func (h *Handler) ListClearanceRequests(c *gin.Context) {
	views, err := h.clearanceSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]v1.ClearanceView, 0, len(views))
	for _, v := range views {
		out = append(out, v1.NewClearanceView(v))
	}
	c.JSON(http.StatusOK, out)
}

// CreateClearanceRequest opens a clearance request for a member
// (POST /clearance)
func (h *Handler) CreateClearanceRequest(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.clearanceSrv.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// CompleteClearanceRequest marks the request completed
// (POST /clearance/:id/complete)
func (h *Handler) CompleteClearanceRequest(c *gin.Context) {
	rec, err := h.clearanceSrv.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RejectClearanceRequest marks the request rejected
// (POST /clearance/:id/reject)
func (h *Handler) RejectClearanceRequest(c *gin.Context) {
	rec, err := h.clearanceSrv.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
