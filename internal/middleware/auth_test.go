package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func sessionClaims(expiresIn time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "1",
		"role":    "admin",
		"iat":     jwt.NewNumericDate(time.Now()),
		"exp":     jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	secret := "test-secret"
	token := signTestToken(t, secret, sessionClaims(time.Hour))

	var gotUserID, gotRole string
	handler := AuthMiddleware(secret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		gotRole, _ = GetUserRole(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUserID != "1" {
		t.Errorf("user id on context = %q, want 1", gotUserID)
	}
	if gotRole != "admin" {
		t.Errorf("role on context = %q, want admin", gotRole)
	}
}

func TestAuthMiddlewareRejectsBadRequests(t *testing.T) {
	secret := "test-secret"

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + signTestToken(t, "other-secret", sessionClaims(time.Hour))},
		{"expired token", "Bearer " + signTestToken(t, secret, sessionClaims(-time.Hour))},
	}

	for _, tc := range cases {
		handler := AuthMiddleware(secret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("%s: request reached the handler", tc.name)
		}))

		req := httptest.NewRequest("DELETE", "/api/products/1", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, w.Code)
		}
	}
}

func TestAuthMiddlewareRejectsTokensWithoutSessionClaims(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"iat": jwt.NewNumericDate(time.Now()),
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := signTestToken(t, secret, claims)

	handler := AuthMiddleware(secret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request with claimless token reached the handler")
	}))

	req := httptest.NewRequest("POST", "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAdminChecksTheSessionRole(t *testing.T) {
	secret := "test-secret"

	chain := func(role string) http.Handler {
		claims := sessionClaims(time.Hour)
		claims["role"] = role
		token := signTestToken(t, secret, claims)

		inner := RequireAdmin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		outer := AuthMiddleware(secret, zap.NewNop())(inner)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
			outer.ServeHTTP(w, r)
		})
	}

	req := httptest.NewRequest("DELETE", "/api/products/1", nil)
	w := httptest.NewRecorder()
	chain("admin").ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin session blocked with %d", w.Code)
	}

	req = httptest.NewRequest("DELETE", "/api/products/1", nil)
	w = httptest.NewRecorder()
	chain("viewer").ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin session got %d, want 403", w.Code)
	}
}
