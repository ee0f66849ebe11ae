package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ssfi-digital/federation-portal/models"
)

var testSecret = []byte("test-secret-key")

func signToken(t *testing.T, role string, secret []byte) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "1",
		"role":    role,
		"name":    "Test User",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tokenString
}

func protectedEndpoint(t *testing.T, roles ...models.UserRole) http.Handler {
	t.Helper()
	var final http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := GetUserRoleFromContext(r.Context())
		if err != nil {
			t.Fatalf("role must be available past the middleware: %v", err)
		}
		w.Write([]byte(role))
	})
	if len(roles) > 0 {
		final = RequireRole(roles...)(final)
	}
	return Authenticate(testSecret)(final)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	endpoint := protectedEndpoint(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/menu", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "STATE_ADMIN", testSecret))
	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "STATE_ADMIN" {
		t.Fatalf("expected role claim in context, got %q", rec.Body.String())
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	endpoint := protectedEndpoint(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"wrong signing key", "Bearer " + signToken(t, "STUDENT", []byte("other-secret"))},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/menu", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		endpoint.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

func TestRequireRole(t *testing.T) {
	endpoint := protectedEndpoint(t, models.RoleNationalAdmin)

	req := httptest.NewRequest(http.MethodPost, "/cms/hero", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "NATIONAL_ADMIN", testSecret))
	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin must pass the role gate, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/cms/hero", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "STUDENT", testSecret))
	rec = httptest.NewRecorder()
	endpoint.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("student must be refused the CMS, got %d", rec.Code)
	}
}
