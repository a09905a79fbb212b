package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wayfarer-backend/internal/apperr"
	requestUC "wayfarer-backend/internal/usecase/request"
	"wayfarer-backend/internal/validation"
)

type RequestHandler struct{ uc *requestUC.Usecase }

func NewRequestHandler(uc *requestUC.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

// CreateTripRequest handles POST /api/trip/request.
func (h *RequestHandler) CreateTripRequest(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	var payload validation.TripRequestPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, apperr.Validation("invalid body"))
	}
	dto, err := h.uc.Create(c.Request().Context(), actor, &payload)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, dto)
}

// GetUserRequests handles GET /api/users/requests.
func (h *RequestHandler) GetUserRequests(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	list, err := h.uc.ListForUser(c.Request().Context(), actor.ID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, list)
}

// GetRequestsByStatus handles GET /api/users/requests/:statusId.
func (h *RequestHandler) GetRequestsByStatus(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	list, err := h.uc.GetByStatus(c.Request().Context(), actor, c.Param("statusId"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, list)
}

// GetRequestForEdit handles GET /api/users/requests/:requestId/edit.
func (h *RequestHandler) GetRequestForEdit(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	req, err := h.uc.GetForEdit(c.Request().Context(), actor.ID, c.Param("requestId"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, req)
}

// UpdateUserRequest handles PUT /api/users/requests/:requestId/update.
func (h *RequestHandler) UpdateUserRequest(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, apperr.Validation("invalid body"))
	}
	req, err := h.uc.UpdateByUser(c.Request().Context(), actor.ID, c.Param("requestId"), fields)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, req)
}

// UpdateRequest handles PATCH /api/users/requests/:requestId (manager/admin).
// Not-found and internal failures carry the historical "updateRequest: "
// prefix; validation failures do not.
func (h *RequestHandler) UpdateRequest(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, apperr.Validation("invalid body"))
	}
	req, err := h.uc.UpdateByManager(c.Request().Context(), actor, c.Param("requestId"), fields)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			err = apperr.NotFound("updateRequest: " + apperr.Message(err))
		}
		return fail(c, err)
	}
	return success(c, http.StatusOK, req)
}

// GetTripRequestStats handles GET /api/users/request/stats?start=&end=.
func (h *RequestHandler) GetTripRequestStats(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	result, err := h.uc.Stats(c.Request().Context(), actor.ID, c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, result)
}

// SearchRequests handles GET /api/users/requests/search?key=&value=.
func (h *RequestHandler) SearchRequests(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, apperr.Authorization("unauthenticated"))
	}
	list, err := h.uc.Search(c.Request().Context(), actor.ID, c.QueryParam("key"), c.QueryParam("value"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, list)
}
