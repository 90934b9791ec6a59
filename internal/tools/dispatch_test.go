package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// stubOps records the last call and returns canned results, so dispatch
// behavior can be tested without a database.
type stubOps struct {
	lastFilter  booking.SearchFilter
	lastBook    booking.BookRequest
	lastCode    string
	lastContact string

	searchResult []model.Restaurant
	availResult  *booking.Availability
	bookResult   *booking.Confirmation
	cancelResult *booking.Cancellation
	listResult   []model.ReservationSummary
	err          error
}

func (s *stubOps) SearchRestaurants(_ context.Context, f booking.SearchFilter) ([]model.Restaurant, error) {
	s.lastFilter = f
	return s.searchResult, s.err
}

func (s *stubOps) CheckAvailability(_ context.Context, restaurantID int64, slotExpr string, partySize int) (*booking.Availability, error) {
	return s.availResult, s.err
}

func (s *stubOps) Book(_ context.Context, req booking.BookRequest) (*booking.Confirmation, error) {
	s.lastBook = req
	return s.bookResult, s.err
}

func (s *stubOps) Cancel(_ context.Context, code string) (*booking.Cancellation, error) {
	s.lastCode = code
	return s.cancelResult, s.err
}

func (s *stubOps) ListByContact(_ context.Context, contact string) ([]model.ReservationSummary, error) {
	s.lastContact = contact
	return s.listResult, s.err
}

func TestExecuteUnknownTool(t *testing.T) {
	d := NewDispatcher(&stubOps{})
	res := d.Execute(context.Background(), "sendResponse", json.RawMessage(`{}`))
	m, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "unknown_tool", m["error"])
}

func TestExecuteSearchPassesFilter(t *testing.T) {
	ops := &stubOps{searchResult: []model.Restaurant{{ID: 1, Name: "Little Italy"}}}
	d := NewDispatcher(ops)

	args := json.RawMessage(`{"cuisines":["Italian"],"locations":["Pune"],"min_capacity":20,"seating_types":["indoor"]}`)
	res := d.Execute(context.Background(), ToolSearchRestaurants, args)

	items, ok := res.([]model.Restaurant)
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, []string{"Italian"}, ops.lastFilter.Cuisines)
	assert.Equal(t, []string{"Pune"}, ops.lastFilter.Locations)
	require.NotNil(t, ops.lastFilter.MinCapacity)
	assert.Equal(t, 20, *ops.lastFilter.MinCapacity)
	assert.Nil(t, ops.lastFilter.MaxCapacity)
}

func TestExecuteMakeReservation(t *testing.T) {
	ops := &stubOps{bookResult: &booking.Confirmation{ReservationCode: "R1A2B3C4D", Status: "confirmed"}}
	d := NewDispatcher(ops)

	args := json.RawMessage(`{
        "restaurant_id": 7,
        "datetime_iso": "tomorrow 7pm",
        "party_size": 4,
        "user_name": "Asha",
        "contact": "+91-9800000001",
        "seating_type": "rooftop"
    }`)
	res := d.Execute(context.Background(), ToolMakeReservation, args)

	conf, ok := res.(*booking.Confirmation)
	require.True(t, ok)
	assert.Equal(t, "confirmed", conf.Status)
	assert.Equal(t, int64(7), ops.lastBook.RestaurantID)
	assert.Equal(t, "tomorrow 7pm", ops.lastBook.RawDatetime)
	require.NotNil(t, ops.lastBook.SeatingType)
	assert.Equal(t, "rooftop", *ops.lastBook.SeatingType)
}

func TestExecuteMakeReservationAltDatetimeKey(t *testing.T) {
	ops := &stubOps{bookResult: &booking.Confirmation{ReservationCode: "R1A2B3C4D", Status: "confirmed"}}
	d := NewDispatcher(ops)

	args := json.RawMessage(`{"restaurant_id":7,"datetime":"2026-09-16 19:00","party_size":2,"user_name":"A","contact":"c"}`)
	d.Execute(context.Background(), ToolMakeReservation, args)
	assert.Equal(t, "2026-09-16 19:00", ops.lastBook.RawDatetime)
}

func TestExecuteMissingRequiredArgs(t *testing.T) {
	d := NewDispatcher(&stubOps{})

	cases := map[string]json.RawMessage{
		ToolCheckAvailability: json.RawMessage(`{"restaurant_id":1}`),
		ToolMakeReservation:   json.RawMessage(`{"restaurant_id":1,"datetime_iso":"x","party_size":2}`),
		ToolCancelReservation: json.RawMessage(`{}`),
		ToolListReservations:  json.RawMessage(`{}`),
	}
	for name, args := range cases {
		res := d.Execute(context.Background(), name, args)
		m, ok := res.(map[string]any)
		require.True(t, ok, "tool %s", name)
		assert.Equal(t, "invalid_arguments", m["error"], "tool %s", name)
	}
}

func TestExecuteMalformedJSON(t *testing.T) {
	d := NewDispatcher(&stubOps{})
	res := d.Execute(context.Background(), ToolSearchRestaurants, json.RawMessage(`{not json`))
	m, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "invalid_arguments", m["error"])
}

func TestExecuteFailureEnvelopes(t *testing.T) {
	ops := &stubOps{err: &booking.Failure{Kind: booking.KindNoAvailability, SeatsLeft: 3}}
	d := NewDispatcher(ops)

	args := json.RawMessage(`{"restaurant_id":1,"datetime_iso":"2026-09-16 19:00","party_size":8,"user_name":"A","contact":"c"}`)
	res := d.Execute(context.Background(), ToolMakeReservation, args)

	m, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, booking.KindNoAvailability, m["error"])
	assert.Equal(t, 3, m["seats_left"])
	_, hasAvailable := m["available"]
	assert.False(t, hasAvailable)
}

func TestExecuteAvailabilityFailureCarriesFlag(t *testing.T) {
	ops := &stubOps{err: &booking.Failure{Kind: booking.KindNoAvailability, SeatsLeft: 0}}
	d := NewDispatcher(ops)

	args := json.RawMessage(`{"restaurant_id":1,"datetime_iso":"2026-09-16 19:00","party_size":8}`)
	res := d.Execute(context.Background(), ToolCheckAvailability, args)

	m, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, booking.KindNoAvailability, m["error"])
	assert.Equal(t, false, m["available"])
}

func TestExecuteUnparseableDatetimeCarriesDebug(t *testing.T) {
	ops := &stubOps{err: &booking.Failure{Kind: booking.KindUnparseableDatetime}}
	d := NewDispatcher(ops)

	args := json.RawMessage(`{"restaurant_id":1,"datetime_iso":"whenever","party_size":2,"user_name":"A","contact":"c"}`)
	res := d.Execute(context.Background(), ToolMakeReservation, args)

	m, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, booking.KindUnparseableDatetime, m["error"])
	assert.Contains(t, m, "debug")
}

func TestExecuteCancelAndList(t *testing.T) {
	ops := &stubOps{
		cancelResult: &booking.Cancellation{Status: "cancelled", ReservationCode: "R1A2B3C4D"},
		listResult:   []model.ReservationSummary{{Code: "R1A2B3C4D"}},
	}
	d := NewDispatcher(ops)

	res := d.Execute(context.Background(), ToolCancelReservation, json.RawMessage(`{"reservation_code":"R1A2B3C4D"}`))
	cancel, ok := res.(*booking.Cancellation)
	require.True(t, ok)
	assert.Equal(t, "cancelled", cancel.Status)
	assert.Equal(t, "R1A2B3C4D", ops.lastCode)

	res = d.Execute(context.Background(), ToolListReservations, json.RawMessage(`{"contact":"+91-9800000001"}`))
	items, ok := res.([]model.ReservationSummary)
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, "+91-9800000001", ops.lastContact)
}

func TestSpecsCoverEveryTool(t *testing.T) {
	specs := Specs()
	names := make(map[string]bool, len(specs))
	for _, s := range specs {
		names[s.Name] = true
		assert.NotEmpty(t, s.Description, s.Name)
		assert.Equal(t, "object", s.Parameters["type"], s.Name)
	}
	for _, want := range []string{
		ToolSearchRestaurants, ToolCheckAvailability, ToolMakeReservation,
		ToolCancelReservation, ToolListReservations,
	} {
		assert.True(t, names[want], "missing spec for %s", want)
	}
}
