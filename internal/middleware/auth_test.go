package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contaflow-bot/internal/auth"
	"contaflow-bot/internal/config"

	"github.com/gin-gonic/gin"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", append(handlers, func(c *gin.Context) {
		userID, _ := UserID(c)
		c.String(http.StatusOK, userID)
	})...)
	return r
}

func TestRequireAuth(t *testing.T) {
	ts := auth.NewTokenService(config.Config{JWTSecret: "secret"})
	r := newRouter(NewAuthMiddleware(ts).RequireAuth())

	token, err := ts.GenerateToken("5b0c6c1e-8d52-4d6b-9a3e-1f2f4a0b9c11")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if tc.status == http.StatusOK && rec.Body.String() != "5b0c6c1e-8d52-4d6b-9a3e-1f2f4a0b9c11" {
				t.Fatalf("unexpected user id %q", rec.Body.String())
			}
		})
	}
}

func TestRequireTelegramSecret(t *testing.T) {
	r := newRouter(RequireTelegramSecret("s3cr3t"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(telegramSecretHeader, "s3cr3t")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with header, got %d", rec.Code)
	}
}

func TestRequireTelegramSecretDisabled(t *testing.T) {
	r := newRouter(RequireTelegramSecret(""))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
