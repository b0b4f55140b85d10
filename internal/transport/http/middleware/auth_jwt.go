package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"munch-pos/internal/core/auth"
	resp "munch-pos/internal/transport/http/response"
)

const KeyEmail = "emailAddress"

// AuthJWT Bearer 校验；缺失/无效一律 401
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Unauthorized(c, "Missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Unauthorized(c, "Invalid or expired token")
			return
		}
		c.Set(KeyEmail, claims.EmailAddress)
		c.Next()
	}
}
