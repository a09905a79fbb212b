package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wayfarer-backend/internal/apperr"
	commentUC "wayfarer-backend/internal/usecase/comment"
	"wayfarer-backend/internal/validation"
)

type CommentHandler struct{ uc *commentUC.Usecase }

func NewCommentHandler(uc *commentUC.Usecase) *CommentHandler { return &CommentHandler{uc: uc} }

// CreateComment handles POST /api/comments.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	var payload validation.CommentPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, apperr.Validation("invalid body"))
	}
	dto, err := h.uc.Create(c.Request().Context(), actor.ID, &payload)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, dto)
}

// DeleteComment handles DELETE /api/comments/:commentId.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	id, err := h.uc.Delete(c.Request().Context(), actor.ID, c.Param("commentId"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, map[string]uint{"id": id})
}
