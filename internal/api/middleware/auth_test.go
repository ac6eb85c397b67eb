package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/security"
)

func newTestTokens(t *testing.T) *security.TokenManager {
	t.Helper()
	m, err := security.NewTokenManager(security.TokenConfig{
		Secret:   []byte("middleware-secret"),
		Issuer:   "build-service",
		Audience: "build-service-api",
		Validity: time.Hour,
	})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return m
}

func runAuth(t *testing.T, header string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(newTestTokens(t))(next)(c)
	return rec, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	signed, err := newTestTokens(t).Issue(domain.Principal{ID: 3, Email: "ann@site.io", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	called := false
	rec, err := runAuth(t, "Bearer "+signed, func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.ID != 3 || p.Role != domain.RoleUser || p.Email != "ann@site.io" {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"missing header", "", domain.ErrUnauthenticated},
		{"wrong scheme", "Token abc", domain.ErrInvalidToken},
		{"empty token", "Bearer ", domain.ErrInvalidToken},
		{"garbage token", "Bearer not-a-token", domain.ErrInvalidToken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuth(t, tc.header, func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthMiddleware_ForeignSecret(t *testing.T) {
	other, err := security.NewTokenManager(security.TokenConfig{
		Secret:   []byte("someone-else"),
		Issuer:   "build-service",
		Audience: "build-service-api",
	})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	signed, err := other.Issue(domain.Principal{ID: domain.AdminID, Email: "admin@admin", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = runAuth(t, "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
