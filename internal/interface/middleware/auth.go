package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mokshit-giddanti/quiz-api/pkg/helpers"
	"github.com/mokshit-giddanti/quiz-api/pkg/response"
)

const (
	CtxUserIDKey  = "userID"
	CtxIsAdminKey = "isAdmin"
)

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it, and puts the decoded identity into the Gin context. Purely a
// gate: no storage access.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. Rejects identities without the
// admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxIsAdminKey) {
			response.Abort(c, http.StatusForbidden, "admin access required", nil)
			return
		}
		c.Next()
	}
}
