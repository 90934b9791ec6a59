package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
)

// ReservationHandler serves availability checks and the reservation
// lifecycle: create, cancel, list by contact.
type ReservationHandler struct {
	Svc *booking.Service
}

func NewReservationHandler(svc *booking.Service) *ReservationHandler {
	return &ReservationHandler{Svc: svc}
}

// Availability handles GET /v1/restaurants/:id/availability.  The answer is
// advisory: no lock is taken, so a concurrent booking can invalidate it by
// the time the caller acts on it.
func (h *ReservationHandler) Availability(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid restaurant id"})
	}
	slotKey := c.QueryParam("datetime")
	if slotKey == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "datetime query parameter required"})
	}
	party, err := strconv.Atoi(c.QueryParam("party_size"))
	if err != nil || party < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "party_size must be a positive integer"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	av, err := h.Svc.CheckAvailability(ctx, id, slotKey, party)
	if err != nil {
		return failureJSON(c, err)
	}
	return c.JSON(http.StatusOK, av)
}

type createReservationReq struct {
	RestaurantID int64   `json:"restaurant_id"`
	DatetimeISO  string  `json:"datetime_iso"`
	PartySize    int     `json:"party_size"`
	UserName     string  `json:"user_name"`
	Contact      string  `json:"contact"`
	SeatingType  *string `json:"seating_type"`
}

// Create handles POST /v1/reservations.  The datetime may be a canonical
// slot key or free-form text; normalization happens inside the booking
// service so HTTP callers and tool callers get identical behavior.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RestaurantID <= 0 || req.DatetimeISO == "" || req.PartySize < 1 ||
		req.UserName == "" || req.Contact == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "restaurant_id, datetime_iso, party_size, user_name and contact are required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	conf, err := h.Svc.Book(ctx, booking.BookRequest{
		RestaurantID: req.RestaurantID,
		RawDatetime:  req.DatetimeISO,
		PartySize:    req.PartySize,
		UserName:     req.UserName,
		Contact:      req.Contact,
		SeatingType:  req.SeatingType,
	})
	if err != nil {
		return failureJSON(c, err)
	}
	return c.JSON(http.StatusCreated, conf)
}

// Cancel handles DELETE /v1/reservations/:code.  A reservation can be
// cancelled exactly once; repeating the call is a conflict, not a no-op.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reservation code required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Svc.Cancel(ctx, code)
	if err != nil {
		return failureJSON(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /v1/reservations?contact=...; it returns every
// reservation made under the contact, cancelled ones included, most recent
// slot first.
func (h *ReservationHandler) List(c echo.Context) error {
	contact := c.QueryParam("contact")
	if contact == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "contact query parameter required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Svc.ListByContact(ctx, contact)
	if err != nil {
		return failureJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": items, "count": len(items)})
}
