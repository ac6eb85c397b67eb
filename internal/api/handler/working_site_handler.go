package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/core/ports"
)

// WorkingSiteHandler handles HTTP requests for working sites.
type WorkingSiteHandler struct {
	service ports.WorkingSiteService
}

func NewWorkingSiteHandler(service ports.WorkingSiteService) *WorkingSiteHandler {
	return &WorkingSiteHandler{service: service}
}

// Create handles POST /working-sites.
//
// @Summary      Open a working site
// @Description  user_id defaults to the calling user and is required for administrators. Only administrators may open a site for another user.
// @Tags         working-sites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkingSiteRequest  true  "Working site"
// @Success      201   {object}  domain.WorkingSite
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /working-sites [post]
func (h *WorkingSiteHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req createWorkingSiteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID := req.UserID
	if userID == 0 {
		if p.IsAdmin() {
			return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
		}
		userID = p.ID
	}

	site, err := h.service.Create(c.Request().Context(), p, ports.CreateWorkingSiteInput{
		Name:   req.Name,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, site)
}

// List handles GET /working-sites.
//
// @Summary      List working sites
// @Tags         working-sites
// @Produce      json
// @Success      200  {array}  domain.WorkingSite
// @Router       /working-sites [get]
func (h *WorkingSiteHandler) List(c echo.Context) error {
	sites, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sites)
}

// Get handles GET /working-sites/:siteId.
//
// @Summary      Get a working site
// @Tags         working-sites
// @Produce      json
// @Param        siteId  path      int  true  "Working site ID"
// @Success      200     {object}  domain.WorkingSite
// @Failure      404     {object}  errorResponse
// @Router       /working-sites/{siteId} [get]
func (h *WorkingSiteHandler) Get(c echo.Context) error {
	id, err := pathID(c, "siteId")
	if err != nil {
		return err
	}

	site, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

// Update handles PUT /working-sites/:siteId.
//
// @Summary      Update a working site
// @Description  contractor_ids replaces the assigned brigades when present.
// @Tags         working-sites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        siteId  path      int                       true  "Working site ID"
// @Param        body    body      updateWorkingSiteRequest  true  "Changes"
// @Success      200     {object}  domain.WorkingSite
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /working-sites/{siteId} [put]
func (h *WorkingSiteHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "siteId")
	if err != nil {
		return err
	}
	var req updateWorkingSiteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	site, err := h.service.Update(c.Request().Context(), p, id, ports.UpdateWorkingSiteInput{
		Name:          req.Name,
		ContractorIDs: req.ContractorIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

// Delete handles DELETE /working-sites/:siteId.
//
// @Summary      Delete a working site
// @Tags         working-sites
// @Security     BearerAuth
// @Param        siteId  path  int  true  "Working site ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /working-sites/{siteId} [delete]
func (h *WorkingSiteHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "siteId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
