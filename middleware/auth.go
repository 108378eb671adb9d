package middleware

import (
	"net/http"
	"strings"

	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

const OperatorKey = "operator"

// AuthMiddleware requires a valid "Bearer <token>" header signed with secret.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format", ""))
			return
		}

		operator, err := utils.ParseToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", ""))
			return
		}

		c.Set(OperatorKey, operator)
		c.Next()
	}
}
