package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/api/metrics"
	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

const principalKey = "principal"

// Auth verifies the bearer token and stores the resulting principal in the
// context. Failures are returned as domain errors for the central error
// handler, which renders them as 401.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return fmt.Errorf("%w: malformed authorization header", domain.ErrInvalidToken)
			}

			principal, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return err
			}

			SetPrincipal(c, principal)
			return next(c)
		}
	}
}

// SetPrincipal stores p as the authenticated caller of the request.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
