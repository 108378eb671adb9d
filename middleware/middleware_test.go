package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret-key-for-unit-tests"

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.APIError {
	t.Helper()
	var body struct {
		Error utils.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func setupStoreRouter(reg *stores.Registry) *gin.Engine {
	r := gin.New()
	r.Use(Recovery())

	customers := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": len(stores.MustCustomers(c.Request.Context()).List())})
	}

	provided := r.Group("/api")
	provided.Use(ProvideStores(reg))
	provided.GET("/customers", customers)

	r.GET("/outside/customers", customers)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestProvideStores(t *testing.T) {
	r := setupStoreRouter(stores.NewRegistry())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Count != 4 {
		t.Errorf("expected 4 seeded customers, got %d", body.Count)
	}
}

func TestRecoveryStoreNotProvided(t *testing.T) {
	r := setupStoreRouter(stores.NewRegistry())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/outside/customers", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if apiErr := decodeError(t, w); apiErr.Code != utils.ErrCodeStoreNotProvided {
		t.Errorf("expected %s, got %s", utils.ErrCodeStoreNotProvided, apiErr.Code)
	}
}

func TestRecoveryGenericPanic(t *testing.T) {
	r := setupStoreRouter(stores.NewRegistry())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if apiErr := decodeError(t, w); apiErr.Code != utils.ErrCodeInternalServerError {
		t.Errorf("expected %s, got %s", utils.ErrCodeInternalServerError, apiErr.Code)
	}
}

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	protected := r.Group("/api")
	protected.Use(AuthMiddleware(testSecret))
	protected.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"operator": c.GetString(OperatorKey)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateToken("desk@salon.test", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	foreign, _ := utils.GenerateToken("desk@salon.test", "other-secret", time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"foreign token", "Bearer " + foreign, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
	}

	r := setupAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusOK {
				var body map[string]string
				json.Unmarshal(w.Body.Bytes(), &body)
				if body["operator"] != "desk@salon.test" {
					t.Errorf("expected operator in context, got %q", body["operator"])
				}
			}
		})
	}
}
