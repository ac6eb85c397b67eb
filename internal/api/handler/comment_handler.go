package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buildservice/build-service/internal/core/ports"
)

// CommentHandler handles HTTP requests for contractor comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /comments/contractors/:contractorId.
//
// @Summary      Comment on a brigade
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        contractorId  path      int             true  "Contractor ID"
// @Param        body          body      commentRequest  true  "Comment"
// @Success      201           {object}  domain.Comment
// @Failure      400           {object}  errorResponse
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /comments/contractors/{contractorId} [post]
func (h *CommentHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	contractorID, err := pathID(c, "contractorId")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), p, contractorID, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListForContractor handles GET /comments/contractors/:contractorId.
//
// @Summary      List comments about a brigade
// @Tags         comments
// @Produce      json
// @Param        contractorId  path     int  true  "Contractor ID"
// @Success      200           {array}  domain.Comment
// @Router       /comments/contractors/{contractorId} [get]
func (h *CommentHandler) ListForContractor(c echo.Context) error {
	contractorID, err := pathID(c, "contractorId")
	if err != nil {
		return err
	}

	comments, err := h.service.ListForContractor(c.Request().Context(), contractorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// ListForUser handles GET /comments/users/:userId.
//
// @Summary      List comments written by a user
// @Tags         comments
// @Produce      json
// @Param        userId  path     int  true  "User ID"
// @Success      200     {array}  domain.Comment
// @Router       /comments/users/{userId} [get]
func (h *CommentHandler) ListForUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	comments, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Update handles PUT /comments/:commentId.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path      int             true  "Comment ID"
// @Param        body       body      commentRequest  true  "Comment"
// @Success      200        {object}  domain.Comment
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "commentId")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.Update(c.Request().Context(), p, id, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /comments/:commentId.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        commentId  path  int  true  "Comment ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
