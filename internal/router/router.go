package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/restaurant-table-reservation/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware" // import middleware for JWT authentication
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the token endpoint.  There is no user signup or
// login in this service; the only credential exchange is the orchestrator's
// client id and secret for a short-lived access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/token", a.Token)
}

// RegisterPublic registers the unauthenticated browse endpoints.  Guests
// can search the restaurant catalog and probe availability without a
// token; only operations that create or reveal reservations are protected.
func RegisterPublic(e *echo.Echo, r *handler.RestaurantHandler, res *handler.ReservationHandler) {
	// Search the restaurant catalog with optional filters.
	e.GET("/v1/restaurants", r.Search)
	// Advisory availability probe for one restaurant and slot.
	e.GET("/v1/restaurants/:id/availability", res.Availability)
}

// RegisterReservations registers the protected reservation lifecycle and
// the tool dispatch surface.  All routes in this group require a valid
// access token issued by the /v1/auth/token endpoint.
func RegisterReservations(e *echo.Echo, res *handler.ReservationHandler, t *handler.ToolsHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	// Reservation lifecycle: create, cancel, list by contact.
	auth.POST("/reservations", res.Create)
	auth.DELETE("/reservations/:code", res.Cancel)
	auth.GET("/reservations", res.List)

	// Tool dispatch for the orchestrator: declarations plus execution by name.
	auth.GET("/tools", t.Specs)
	auth.POST("/tools/:name", t.Execute)
}
