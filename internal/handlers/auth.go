package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
)

// Login authenticates a member and opens the current session
// (POST /auth/login)
func (h *Handler) Login(c *gin.Context) {
	var req v1.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "username and password are required"})
		return
	}

	user, token, err := h.authSrv.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.LoginResponse{
		Token: token,
		User:  v1.NewSessionUser(*user),
	})
}

// Logout clears the current session
// (POST /auth/logout)
func (h *Handler) Logout(c *gin.Context) {
	if err := h.authSrv.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCurrentUser returns the session snapshot of the logged-in member
// (GET /auth/me)
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, err := h.authSrv.CurrentUser(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewSessionUser(*user))
}
