// utils/auth.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingSecret = errors.New("JWT_SECRET not set")
	ErrInvalidToken  = errors.New("invalid token")
)

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken signs an HS256 token for the front desk operator.
func GenerateToken(operator, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  operator,
		"role": "front-desk",
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies tokenString and returns its subject.
func ParseToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
