package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	PhoneNumber    string
	WhatsAppNumber string
}

// Enabled reports whether enough is set to send messages.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && (t.PhoneNumber != "" || t.WhatsAppNumber != "")
}

type Config struct {
	Port               string
	JWTSecret          string
	JWTExpiry          time.Duration
	AdminEmail         string
	AdminPasswordHash  string
	CORSAllowedOrigins []string
	LogLevel           string
	LogFormat          string
	ReminderSchedule   string
	RateLimitPerMinute int
	Twilio             TwilioConfig
}

// LoadEnv loads the given env files, or .env when none are named. Variables
// already set in the environment win. A missing file is not an error.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	expiryHours, err := getEnvInt("JWT_EXPIRY_HOURS", 24)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               GetEnv("PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiry:          time.Duration(expiryHours) * time.Hour,
		AdminEmail:         GetEnv("ADMIN_EMAIL", "frontdesk@salonpro.local"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		CORSAllowedOrigins: splitList(GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		LogFormat:          GetEnv("LOG_FORMAT", "console"),
		ReminderSchedule:   GetEnv("REMINDER_SCHEDULE", "0 9 * * *"),
		RateLimitPerMinute: rateLimit,
		Twilio: TwilioConfig{
			AccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
			PhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
			WhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		},
	}, nil
}

// Validate fails on settings the server cannot run without and warns about
// optional ones.
func (c *Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	if c.AdminPasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH not set - operator login is disabled")
	}
	if !c.Twilio.Enabled() {
		log.Warn().Msg("Twilio credentials not set - payment reminders and receipts will only be logged")
	}
	if c.RateLimitPerMinute <= 0 {
		log.Warn().Int("rate_limit", c.RateLimitPerMinute).Msg("RATE_LIMIT_PER_MINUTE is not positive - rate limiting disabled")
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
