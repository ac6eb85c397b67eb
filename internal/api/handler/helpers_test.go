package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/api/middleware"
	"github.com/buildservice/build-service/internal/core/domain"
)

var (
	adminCaller = domain.Principal{ID: domain.AdminID, Email: "admin@admin", Role: domain.RoleAdmin}
	userCaller  = domain.Principal{ID: 3, Email: "ann@site.io", Role: domain.RoleUser}
)

// newContext builds an echo context with the validator installed. A nil
// principal leaves the request unauthenticated.
func newContext(t *testing.T, method, target, body string, principal *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		middleware.SetPrincipal(c, *principal)
	}
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

// httpStatus extracts the status code carried by an *echo.HTTPError.
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}
