package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if err := LoadEnv(filepath.Join(dir, "absent.env")); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("reads variables", func(t *testing.T) {
		path := filepath.Join(dir, "desk.env")
		if err := os.WriteFile(path, []byte("SALONPRO_TEST_GREETING=namaste\n"), 0o600); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("SALONPRO_TEST_GREETING") })

		if err := LoadEnv(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := os.Getenv("SALONPRO_TEST_GREETING"); got != "namaste" {
			t.Errorf("expected namaste, got %q", got)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		path := filepath.Join(dir, "dir.env")
		if err := os.Mkdir(path, 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := LoadEnv(path); err == nil {
			t.Error("expected an error for an env path that cannot be read")
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_EXPIRY_HOURS", "RATE_LIMIT_PER_MINUTE", "CORS_ALLOWED_ORIGINS", "REMINDER_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("expected 24h expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.ReminderSchedule != "0 9 * * *" {
		t.Errorf("expected daily 9am schedule, got %q", cfg.ReminderSchedule)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://desk.example, https://admin.example ,")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("expected 2h expiry, got %v", cfg.JWTExpiry)
	}
	want := []string{"https://desk.example", "https://admin.example"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Errorf("expected origin %q, got %q", want[i], cfg.CORSAllowedOrigins[i])
		}
	}
	if !cfg.Twilio.Enabled() {
		t.Error("expected Twilio to be enabled")
	}
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-integer JWT_EXPIRY_HOURS")
	}
}

func TestValidateMissingJWTSecret(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing JWT_SECRET")
	}
}

func TestValidateAllSet(t *testing.T) {
	cfg := &Config{JWTSecret: "test-secret", AdminPasswordHash: "hash", RateLimitPerMinute: 60}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GET_ENV_KEY", "test-value")
	if got := GetEnv("TEST_GET_ENV_KEY", "default"); got != "test-value" {
		t.Errorf("expected 'test-value', got '%s'", got)
	}
	if got := GetEnv("TEST_GET_ENV_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected 'fallback', got '%s'", got)
	}
}

func TestPerformanceLoggerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PerformanceLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("expected handler status to pass through, got %d", w.Code)
	}
}
