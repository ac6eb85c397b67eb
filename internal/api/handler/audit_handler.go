package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/core/ports"
)

// AuditHandler exposes the login audit trail to administrators.
type AuditHandler struct {
	service ports.LoginAuditService
}

func NewAuditHandler(service ports.LoginAuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// RecentLogins handles GET /audit/logins.
//
// @Summary      Recent login attempts
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum number of events (default 50, max 500)"
// @Success      200    {array}  domain.LoginEvent
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /audit/logins [get]
func (h *AuditHandler) RecentLogins(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	events, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
