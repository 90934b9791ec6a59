package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
)

// RestaurantHandler serves the restaurant catalog.
type RestaurantHandler struct {
	Svc *booking.Service
}

func NewRestaurantHandler(svc *booking.Service) *RestaurantHandler {
	return &RestaurantHandler{Svc: svc}
}

// Search handles GET /v1/restaurants.  Filters arrive as query parameters:
// comma-separated lists for cuisine/location/seating_type and integer
// bounds for capacity.  Results come back ordered by rating, best first.
func (h *RestaurantHandler) Search(c echo.Context) error {
	f := booking.SearchFilter{
		Cuisines:     splitCSV(c.QueryParam("cuisine")),
		Locations:    splitCSV(c.QueryParam("location")),
		SeatingTypes: splitCSV(c.QueryParam("seating_type")),
	}
	var err error
	if f.MinCapacity, err = optInt(c.QueryParam("min_capacity")); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "min_capacity must be an integer"})
	}
	if f.MaxCapacity, err = optInt(c.QueryParam("max_capacity")); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_capacity must be an integer"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Svc.SearchRestaurants(ctx, f)
	if err != nil {
		return failureJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurants": items, "count": len(items)})
}

// splitCSV splits a comma-separated query value into trimmed non-empty parts.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// optInt parses an optional integer query parameter.
func optInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
