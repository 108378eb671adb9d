// controllers/auth.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController signs in the single front desk operator configured for
// this deployment.
type AuthController struct {
	Email        string
	PasswordHash string
	Secret       string
	Expiry       time.Duration
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if !bindJSON(c, &input) {
		return
	}

	email := strings.TrimSpace(input.Email)
	if ac.PasswordHash == "" ||
		!strings.EqualFold(email, ac.Email) ||
		!utils.CheckPasswordHash(input.Password, ac.PasswordHash) {
		log.Warn().Str("email", email).Str("client_ip", c.ClientIP()).Msg("Failed login attempt")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid credentials", ""))
		return
	}

	token, err := utils.GenerateToken(ac.Email, ac.Secret, ac.Expiry)
	if err != nil {
		utils.LogError(err, "Failed to generate token")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate token", ""))
		return
	}

	c.SetCookie(
		"token",
		token,
		int(ac.Expiry.Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(ac.Expiry.Seconds()),
		"user": gin.H{
			"email": ac.Email,
			"role":  "front-desk",
		},
	})
}

// Me echoes the operator the request was authenticated as
func (ac *AuthController) Me(c *gin.Context) {
	operator := c.GetString("operator")
	if operator == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Operator not found in context", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": operator,
			"role":  "front-desk",
		},
	})
}
