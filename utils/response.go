package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

// RespondWithError writes {"error": err} and aborts the handler chain.
func RespondWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{"error": err})
}

const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeStoreNotProvided    = "STORE_NOT_PROVIDED"
)

func RespondValidationFailed(c *gin.Context, err error) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Input validation failed", SanitizeValidationError(err)))
}

func RespondNotFound(c *gin.Context, what string) {
	RespondWithError(c, NewAPIError(http.StatusNotFound, ErrCodeNotFound, what+" not found", ""))
}

// SanitizeValidationError turns binding errors into short field messages
// without leaking struct or type names.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Invalid request body"
	}

	var messages []string
	for _, fe := range validationErrors {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "phone":
			messages = append(messages, fmt.Sprintf("%s must be a valid phone number", field))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	if len(messages) == 0 {
		return "Invalid request body"
	}
	return strings.Join(messages, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
