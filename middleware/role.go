package middleware

import (
	"net/http"

	"letsheal/models"
	"letsheal/services/policy"
	"letsheal/utils"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects guests with 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated() {
			utils.JSONErrorBody(c, http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Please login to continue",
				Relogin: true,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission rejects guests with 401 and sessions whose role lacks the
// capability with 403.
func RequirePermission(allowed func(models.Permissions) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if !session.Authenticated() {
			utils.JSONErrorBody(c, http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Please login to continue",
				Relogin: true,
			})
			c.Abort()
			return
		}
		if !allowed(policy.PermittedActions(session.CurrentRole())) {
			utils.JSONError(c, http.StatusForbidden, message, "role: "+session.Role.String())
			c.Abort()
			return
		}
		c.Next()
	}
}

func CanBook(p models.Permissions) bool        { return p.CanBookAppointment }
func CanCancel(p models.Permissions) bool      { return p.CanCancelAppointment }
func CanViewAppts(p models.Permissions) bool   { return p.CanViewAppointments }
func CanManageUsers(p models.Permissions) bool { return p.CanManageUsers }
func CanManageBlog(p models.Permissions) bool  { return p.CanManageBlog }
