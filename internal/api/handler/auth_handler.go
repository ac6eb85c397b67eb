package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/api/metrics"
	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Description  Without a role the account kind is derived from the stores: the configured administrator, then users, then contractors.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("unknown", loginResult(err)).Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(res.Role.String(), "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{ID: res.ID, Token: res.Token, Role: res.Role})
}

// Me returns the authenticated principal.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Principal
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnsupportedRole):
		return "bad_role"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
