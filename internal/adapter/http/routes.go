package http

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the API surface. Auth runs on everything under /api;
// the admin gate covers the manager-only routes; idempotency covers the
// mutating ones.
func RegisterRoutes(e *echo.Echo, h *Handler, rh *RequestHandler, ch *CommentHandler,
	auth, adminGate, idemp echo.MiddlewareFunc) {

	e.GET("/health", h.Health)

	api := e.Group("/api", auth)

	api.POST("/trip/request", rh.CreateTripRequest, idemp)

	api.GET("/users/requests", rh.GetUserRequests)
	api.GET("/users/requests/search", rh.SearchRequests)
	api.GET("/users/requests/:statusId", rh.GetRequestsByStatus, adminGate)
	api.PATCH("/users/requests/:requestId", rh.UpdateRequest, adminGate, idemp)
	api.GET("/users/requests/:requestId/edit", rh.GetRequestForEdit)
	api.PUT("/users/requests/:requestId/update", rh.UpdateUserRequest)
	api.GET("/users/request/stats", rh.GetTripRequestStats)

	api.POST("/comments", ch.CreateComment, idemp)
	api.DELETE("/comments/:commentId", ch.DeleteComment)
}
