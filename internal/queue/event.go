// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedQueue is the durable queue confirmed-reservation
// events are published to and consumed from.
const ReservationConfirmedQueue = "reservation.confirmed"

// ReservationConfirmedEvent is published when a reservation is successfully
// committed.  It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID   int64  `json:"reservation_id"`
	ReservationCode string `json:"reservation_code"`
	RestaurantID    int64  `json:"restaurant_id"`
	RestaurantName  string `json:"restaurant_name,omitempty"`
	SlotKey         string `json:"slot_key"`
	PartySize       int    `json:"party_size"`
	UserName        string `json:"user_name"`
	Contact         string `json:"contact"`
	SeatingType     string `json:"seating_type,omitempty"`
	ConfirmedAt     string `json:"confirmed_at"`
}
