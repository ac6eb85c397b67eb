package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/core/ports"
)

// ContractorHandler handles HTTP requests for brigades.
type ContractorHandler struct {
	service ports.ContractorService
}

func NewContractorHandler(service ports.ContractorService) *ContractorHandler {
	return &ContractorHandler{service: service}
}

// Register handles POST /contractors.
//
// @Summary      Register a brigade with its own credential
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        body  body      registerContractorRequest  true  "Brigade details"
// @Success      201   {object}  domain.Contractor
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /contractors [post]
func (h *ContractorHandler) Register(c echo.Context) error {
	var req registerContractorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contractor, err := h.service.Register(c.Request().Context(), ports.RegisterContractorInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		WorkersAmount: req.WorkersAmount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contractor)
}

// CreateForUser handles POST /contractors/for-user.
//
// @Summary      Create a brigade profile for the calling user
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contractorForUserRequest  true  "Brigade details"
// @Success      201   {object}  domain.Contractor
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /contractors/for-user [post]
func (h *ContractorHandler) CreateForUser(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req contractorForUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contractor, err := h.service.CreateForUser(c.Request().Context(), p, ports.CreateContractorForUserInput{
		Name:          req.Name,
		WorkersAmount: req.WorkersAmount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contractor)
}

// List handles GET /contractors.
//
// @Summary      List brigades
// @Tags         contractors
// @Produce      json
// @Success      200  {array}  domain.Contractor
// @Router       /contractors [get]
func (h *ContractorHandler) List(c echo.Context) error {
	contractors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractors)
}

// Get handles GET /contractors/:contractorId.
//
// @Summary      Get a brigade
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        contractorId  path      int  true  "Contractor ID"
// @Success      200           {object}  domain.Contractor
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /contractors/{contractorId} [get]
func (h *ContractorHandler) Get(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contractorId")
	if err != nil {
		return err
	}

	contractor, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractor)
}

// Update handles PUT /contractors/:contractorId.
//
// @Summary      Update a brigade
// @Description  The rating is only applied for administrators.
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        contractorId  path      int                      true  "Contractor ID"
// @Param        body          body      updateContractorRequest  true  "New profile"
// @Success      200           {object}  domain.Contractor
// @Failure      400           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Failure      409           {object}  errorResponse
// @Router       /contractors/{contractorId} [put]
func (h *ContractorHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contractorId")
	if err != nil {
		return err
	}
	var req updateContractorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contractor, err := h.service.Update(c.Request().Context(), p, id, ports.UpdateContractorInput{
		Name:          req.Name,
		Email:         req.Email,
		WorkersAmount: req.WorkersAmount,
		Rating:        req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contractor)
}

// Delete handles DELETE /contractors/:contractorId.
//
// @Summary      Delete a brigade
// @Tags         contractors
// @Security     BearerAuth
// @Param        contractorId  path  int  true  "Contractor ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /contractors/{contractorId} [delete]
func (h *ContractorHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contractorId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
