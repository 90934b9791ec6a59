// Package tools exposes the reservation operations as named tools for an
// external orchestrator (a dialogue-driving agent or any other caller).
// Each tool takes a JSON argument object and returns a JSON-marshalable
// result; operation failures are serialized as {"error": kind, ...}
// envelopes so the orchestrator can recover, for example by asking the
// user a clarifying question after unparseable_datetime, instead of
// treating every failure as fatal.
package tools

import (
	"context"
	"encoding/json"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// Tool names understood by Execute.
const (
	ToolSearchRestaurants = "searchRestaurants"
	ToolCheckAvailability = "checkAvailability"
	ToolMakeReservation   = "makeReservation"
	ToolCancelReservation = "cancelReservation"
	ToolListReservations  = "listReservations"
)

// Operations is the slice of the booking service the dispatcher needs.
// *booking.Service satisfies it.
type Operations interface {
	SearchRestaurants(ctx context.Context, f booking.SearchFilter) ([]model.Restaurant, error)
	CheckAvailability(ctx context.Context, restaurantID int64, slotExpr string, partySize int) (*booking.Availability, error)
	Book(ctx context.Context, req booking.BookRequest) (*booking.Confirmation, error)
	Cancel(ctx context.Context, code string) (*booking.Cancellation, error)
	ListByContact(ctx context.Context, contact string) ([]model.ReservationSummary, error)
}

// Dispatcher routes named tool calls to the booking operations.
type Dispatcher struct {
	ops Operations
}

// NewDispatcher returns a Dispatcher over the given operations.
func NewDispatcher(ops Operations) *Dispatcher {
	if ops == nil {
		panic("nil operations passed to NewDispatcher")
	}
	return &Dispatcher{ops: ops}
}

type searchArgs struct {
	Cuisines     []string `json:"cuisines"`
	Locations    []string `json:"locations"`
	MinCapacity  *int     `json:"min_capacity"`
	MaxCapacity  *int     `json:"max_capacity"`
	SeatingTypes []string `json:"seating_types"`
}

type availabilityArgs struct {
	RestaurantID int64  `json:"restaurant_id"`
	DatetimeISO  string `json:"datetime_iso"`
	PartySize    int    `json:"party_size"`
}

type reserveArgs struct {
	RestaurantID int64   `json:"restaurant_id"`
	DatetimeISO  string  `json:"datetime_iso"`
	Datetime     string  `json:"datetime"` // accepted as an alternate spelling
	PartySize    int     `json:"party_size"`
	UserName     string  `json:"user_name"`
	Contact      string  `json:"contact"`
	SeatingType  *string `json:"seating_type"`
}

type cancelArgs struct {
	ReservationCode string `json:"reservation_code"`
}

type listArgs struct {
	Contact string `json:"contact"`
}

// Execute runs the named tool with the given JSON arguments and returns a
// JSON-marshalable result.  It never returns a Go error: malformed
// arguments, unknown tools and operation failures all come back as
// {"error": ...} envelopes, which is what a tool-calling orchestrator can
// actually act on.
func (d *Dispatcher) Execute(ctx context.Context, name string, args json.RawMessage) any {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	case ToolSearchRestaurants:
		var a searchArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return invalidArgs(err)
		}
		items, err := d.ops.SearchRestaurants(ctx, booking.SearchFilter{
			Cuisines:     a.Cuisines,
			Locations:    a.Locations,
			MinCapacity:  a.MinCapacity,
			MaxCapacity:  a.MaxCapacity,
			SeatingTypes: a.SeatingTypes,
		})
		if err != nil {
			return failureResult(name, err)
		}
		return items

	case ToolCheckAvailability:
		var a availabilityArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return invalidArgs(err)
		}
		if a.RestaurantID <= 0 || a.DatetimeISO == "" || a.PartySize < 1 {
			return invalidArgsMsg("restaurant_id, datetime_iso and party_size are required")
		}
		av, err := d.ops.CheckAvailability(ctx, a.RestaurantID, a.DatetimeISO, a.PartySize)
		if err != nil {
			return failureResult(name, err)
		}
		return av

	case ToolMakeReservation:
		var a reserveArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return invalidArgs(err)
		}
		raw := a.DatetimeISO
		if raw == "" {
			raw = a.Datetime
		}
		if a.RestaurantID <= 0 || raw == "" || a.PartySize < 1 || a.UserName == "" || a.Contact == "" {
			return invalidArgsMsg("restaurant_id, datetime_iso, party_size, user_name and contact are required")
		}
		conf, err := d.ops.Book(ctx, booking.BookRequest{
			RestaurantID: a.RestaurantID,
			RawDatetime:  raw,
			PartySize:    a.PartySize,
			UserName:     a.UserName,
			Contact:      a.Contact,
			SeatingType:  a.SeatingType,
		})
		if err != nil {
			return failureResult(name, err)
		}
		return conf

	case ToolCancelReservation:
		var a cancelArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return invalidArgs(err)
		}
		if a.ReservationCode == "" {
			return invalidArgsMsg("reservation_code is required")
		}
		res, err := d.ops.Cancel(ctx, a.ReservationCode)
		if err != nil {
			return failureResult(name, err)
		}
		return res

	case ToolListReservations:
		var a listArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return invalidArgs(err)
		}
		if a.Contact == "" {
			return invalidArgsMsg("contact is required")
		}
		items, err := d.ops.ListByContact(ctx, a.Contact)
		if err != nil {
			return failureResult(name, err)
		}
		return items
	}
	return map[string]any{"error": "unknown_tool"}
}

// failureResult converts a booking failure into the envelope shape the
// orchestrator contract promises: the kind under "error" plus the
// kind-specific detail fields.
func failureResult(tool string, err error) map[string]any {
	f, ok := booking.AsFailure(err)
	if !ok {
		return map[string]any{"error": booking.KindDBError, "message": err.Error()}
	}
	m := map[string]any{"error": f.Kind}
	switch f.Kind {
	case booking.KindNoAvailability:
		m["seats_left"] = f.SeatsLeft
	case booking.KindDatetimeInPast:
		m["now"] = f.NowISO
		m["requested"] = f.RequestedISO
	case booking.KindUnparseableDatetime:
		m["debug"] = f.Diagnostics
	case booking.KindDBError:
		if f.Err != nil {
			m["message"] = f.Err.Error()
		}
	}
	// The availability check reports a usable "available" flag even on
	// failure so callers need not special-case the envelope.
	if tool == ToolCheckAvailability {
		m["available"] = false
	}
	return m
}

func invalidArgs(err error) map[string]any {
	return map[string]any{"error": "invalid_arguments", "message": err.Error()}
}

func invalidArgsMsg(msg string) map[string]any {
	return map[string]any{"error": "invalid_arguments", "message": msg}
}
