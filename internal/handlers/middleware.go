package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/services"
	"github.com/firehall/personnel-agent/internal/util"
)

const (
	ctxPersonnelID = "personnel_id"
	ctxUsername    = "username"
	ctxRole        = "role"
)

// AuthRequired validates the Authorization bearer token and injects the
// caller's identity into the request context.
func AuthRequired(authSrv *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "invalid authorization header"})
			return
		}

		claims, err := authSrv.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "invalid or expired token"})
			return
		}

		c.Set(ctxPersonnelID, claims.PersonnelID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RoleRequired allows only callers holding one of the given roles.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !util.Contains(roles, c.GetString(ctxRole)) {
			c.AbortWithStatusJSON(http.StatusForbidden, v1.Error{Error: "insufficient role"})
			return
		}
		c.Next()
	}
}
