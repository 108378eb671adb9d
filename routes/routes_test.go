package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonpro-desk/config"
	"salonpro-desk/models"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type stubReminder struct{}

func (stubReminder) SendPendingPaymentReminders(context.Context) (int, error) { return 0, nil }

func (stubReminder) History() []models.ReminderLog { return nil }

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("desk-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	cfg := &config.Config{
		JWTSecret:          "routes-test-secret",
		JWTExpiry:          time.Hour,
		AdminEmail:         "frontdesk@salonpro.local",
		AdminPasswordHash:  string(hash),
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	if deps.Registry == nil {
		deps.Registry = stores.NewRegistry()
	}
	return SetupRouter(cfg, deps)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, Deps{})
	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAPIRequiresToken(t *testing.T) {
	r := newTestRouter(t, Deps{})
	for _, path := range []string{"/api/customers", "/api/dashboard", "/auth/me"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	if w := serve(r, req); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a forged token, got %d", w.Code)
	}
}

func TestLoginThenBrowse(t *testing.T) {
	reg := stores.NewRegistry()
	r := newTestRouter(t, Deps{Registry: reg})

	body, _ := json.Marshal(gin.H{"email": "frontdesk@salonpro.local", "password": "desk-pass"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("expected a token, got %q (%v)", w.Body.String(), err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var customers []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &customers); err != nil {
		t.Fatalf("failed to decode customers: %v", err)
	}
	if len(customers) != len(reg.Customers.List()) {
		t.Errorf("expected the registry's %d customers, got %d", len(reg.Customers.List()), len(customers))
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "bearer "+login.Token)
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Errorf("expected 200 from /auth/me, got %d", w.Code)
	}
}

func TestReminderRouteIsOptional(t *testing.T) {
	token, err := utils.GenerateToken("frontdesk@salonpro.local", "routes-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	post := func(r *gin.Engine) int {
		req := httptest.NewRequest(http.MethodPost, "/api/reminders/payments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return serve(r, req).Code
	}

	if code := post(newTestRouter(t, Deps{})); code != http.StatusNotFound {
		t.Errorf("expected 404 without a reminder service, got %d", code)
	}
	if code := post(newTestRouter(t, Deps{Reminders: stubReminder{}})); code != http.StatusOK {
		t.Errorf("expected 200 with a reminder service, got %d", code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodOptions, "/api/tally/1/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/customers", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin for unknown origin, got %q", got)
	}
}
