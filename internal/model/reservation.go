package model

import "time"

// Reservation status values.  A reservation is created as confirmed and
// may transition to cancelled exactly once; there is no other state.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation records a confirmed booking of seats at a restaurant for a
// single slot.  Two reservations collide only when they share both the
// restaurant and the exact slot key; slots are point keys, not intervals.
//
// Fields:
//  ID           – primary key identifier.
//  Code         – human-shareable unique code ("R" + 8 hex chars).
//  RestaurantID – restaurant being booked.
//  SlotKey      – canonical "YYYY-MM-DD HH:MM" string in the reference
//                 timezone.
//  PartySize    – number of guests (>= 1).
//  UserName     – customer name.
//  Contact      – phone/email; the de facto customer identity key.
//  SeatingType  – optional seating-style preference.
//  Status       – confirmed or cancelled.
//  CreatedAt    – creation timestamp.
type Reservation struct {
	ID           int64     `json:"id"`                     // reservations.id
	Code         string    `json:"reservation_code"`       // reservations.reservation_code
	RestaurantID int64     `json:"restaurant_id"`          // reservations.restaurant_id
	SlotKey      string    `json:"slot_key"`               // reservations.slot_key
	PartySize    int       `json:"party_size"`             // reservations.party_size
	UserName     string    `json:"user_name"`              // reservations.user_name
	Contact      string    `json:"contact"`                // reservations.contact
	SeatingType  *string   `json:"seating_type,omitempty"` // reservations.seating_type (nullable)
	Status       string    `json:"status"`                 // reservations.status
	CreatedAt    time.Time `json:"created_at"`             // reservations.created_at
}

// ReservationSummary is what listReservations returns per row: the
// reservation joined with its restaurant name.  Cancelled reservations are
// included so callers can filter on Status themselves.
type ReservationSummary struct {
	Code           string `json:"reservation_code"`
	RestaurantName string `json:"restaurant"`
	SlotKey        string `json:"slot_key"`
	PartySize      int    `json:"party_size"`
	UserName       string `json:"user_name"`
	Status         string `json:"status"`
}
