package http

import (
	"github.com/labstack/echo/v4"

	"wayfarer-backend/internal/apperr"
	"wayfarer-backend/internal/authz"
)

// Response envelope shared by every endpoint.

type errorBody struct {
	Message string `json:"message"`
}

func success(c echo.Context, code int, data any) error {
	return c.JSON(code, map[string]any{"status": "success", "data": data})
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]any{
		"status": "fail",
		"error":  errorBody{Message: apperr.Message(err)},
	})
}

// actorFrom pulls the authenticated caller placed in context by the auth
// middleware.
func actorFrom(c echo.Context) (authz.Actor, bool) {
	a, ok := c.Get("actor").(authz.Actor)
	return a, ok
}
