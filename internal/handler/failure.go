package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
)

// failureJSON renders a booking failure as the JSON error envelope with the
// HTTP status its kind maps to.  Anything that is not a booking.Failure is
// treated as an internal error.
func failureJSON(c echo.Context, err error) error {
	f, ok := booking.AsFailure(err)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": booking.KindDBError, "message": err.Error()})
	}

	body := echo.Map{"error": f.Kind}
	switch f.Kind {
	case booking.KindInvalidDatetime:
		if f.Message != "" {
			body["message"] = f.Message
		}
	case booking.KindUnparseableDatetime:
		body["debug"] = f.Diagnostics
	case booking.KindDatetimeInPast:
		body["now"] = f.NowISO
		body["requested"] = f.RequestedISO
	case booking.KindNoAvailability:
		body["seats_left"] = f.SeatsLeft
	case booking.KindDBError:
		if f.Err != nil {
			body["message"] = f.Err.Error()
		}
	}
	return c.JSON(statusForKind(f.Kind), body)
}

// statusForKind maps a failure kind to its HTTP status: malformed or past
// requests are the caller's fault (400), unknown ids are 404, losing a
// capacity or state race is a conflict (409) and everything else is a
// server-side failure (500).
func statusForKind(kind string) int {
	switch kind {
	case booking.KindInvalidDatetime, booking.KindUnparseableDatetime, booking.KindDatetimeInPast:
		return http.StatusBadRequest
	case booking.KindRestaurantNotFound, booking.KindReservationNotFound:
		return http.StatusNotFound
	case booking.KindNoAvailability, booking.KindAlreadyCancelled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
