package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func protectedHandler(t *testing.T, cfg AuthConfig) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return authMiddleware(cfg)(inner)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()
	h := protectedHandler(t, AuthConfig{BearerToken: "tok"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_Bearer(t *testing.T) {
	t.Parallel()
	h := protectedHandler(t, AuthConfig{BearerToken: "tok"})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer tok", http.StatusOK},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "Token tok", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestAuthMiddleware_Basic(t *testing.T) {
	t.Parallel()
	h := protectedHandler(t, AuthConfig{BasicUser: "admin", BasicPass: "hunter2"})

	tests := []struct {
		name string
		user string
		pass string
		want int
	}{
		{"valid credentials", "admin", "hunter2", http.StatusOK},
		{"wrong password", "admin", "nope", http.StatusUnauthorized},
		{"wrong user", "root", "hunter2", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			req.SetBasicAuth(tc.user, tc.pass)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestAuthMiddleware_BasicNotAcceptedForBearerOnly(t *testing.T) {
	t.Parallel()
	h := protectedHandler(t, AuthConfig{BearerToken: "tok"})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.SetBasicAuth("admin", "tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthConfig_IsConfigured(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  AuthConfig
		want bool
	}{
		{"empty", AuthConfig{}, false},
		{"bearer only", AuthConfig{BearerToken: "t"}, true},
		{"basic pair", AuthConfig{BasicUser: "u", BasicPass: "p"}, true},
		{"basic user only", AuthConfig{BasicUser: "u"}, false},
	}
	for _, tc := range tests {
		tc := tc
		if got := tc.cfg.IsConfigured(); got != tc.want {
			t.Errorf("%s: IsConfigured() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
