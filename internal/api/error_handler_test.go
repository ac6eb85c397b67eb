package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{domain.ErrUnsupportedRole, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: expired", domain.ErrInvalidToken), http.StatusUnauthorized},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrContractorNotFound, http.StatusNotFound},
		{domain.ErrCommentNotFound, http.StatusNotFound},
		{domain.ErrWorkingSiteNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrContractorExists, http.StatusConflict},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	h := NewHTTPErrorHandler(zerolog.Nop(), "build-service")
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tt.err, c)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
				t.Fatalf("expected error envelope, got %q", rec.Body.String())
			}
			if tt.want == http.StatusInternalServerError && body.Error != "internal server error" {
				t.Fatalf("internal error leaked: %q", body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_BearerChallenge(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop(), "build-service")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/me", nil), rec)
	h(domain.ErrUnauthenticated, c)

	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != `Bearer realm="build-service"` {
		t.Fatalf("unexpected challenge: %q", got)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/users/4", nil), rec)
	h(domain.ErrForbidden, c)

	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "" {
		t.Fatalf("403 must not carry a challenge, got %q", got)
	}
}
