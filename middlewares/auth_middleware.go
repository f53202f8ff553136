package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KaarimHussain/FitFlow-sub000/models"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// Protect validates the Bearer token and attaches the caller identity
// to the request context.
func Protect(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{
				Success: false, Message: "Authorization header required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{
				Success: false, Message: "Invalid or expired token",
			})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// AdminOnly requires Protect to have run and the caller to be an admin.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Response{
				Success: false, Message: "Not authenticated",
			})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.Response{
				Success: false, Message: "Admin privileges required",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the caller id attached by Protect.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
