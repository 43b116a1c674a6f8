package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListCandidates returns every recruitment application
// (GET /recruitment)
func (h *Handler) ListCandidates(c *gin.Context) {
	records, err := h.recruitmentSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ApplyCandidate files a recruitment application
// (POST /recruitment)
func (h *Handler) ApplyCandidate(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.recruitmentSrv.Apply(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ShortlistCandidate moves an application to the shortlist
// (POST /recruitment/:id/shortlist)
func (h *Handler) ShortlistCandidate(c *gin.Context) {
	rec, err := h.recruitmentSrv.Shortlist(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RejectCandidate rejects an application
// (POST /recruitment/:id/reject)
func (h *Handler) RejectCandidate(c *gin.Context) {
	rec, err := h.recruitmentSrv.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AcceptCandidate accepts a shortlisted candidate and registers them as
// personnel, returning the generated credentials
// (POST /recruitment/:id/accept)
func (h *Handler) AcceptCandidate(c *gin.Context) {
	var req v1.AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "rank is required"})
		return
	}

	rec, creds, err := h.recruitmentSrv.Accept(c.Request.Context(), c.Param("id"), req.Rank)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v1.RegisterResponse{
		Personnel:   rec,
		Credentials: v1.NewCredentials(*creds),
	})
}
