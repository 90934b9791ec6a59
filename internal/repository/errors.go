// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// booking service to distinguish between different failure scenarios
// without inspecting SQL driver errors: an unknown restaurant id, an
// unknown reservation code, or a cancel attempt against a reservation
// that was already cancelled.
package repository

import "errors"

// ErrRestaurantNotFound is returned when a restaurant id does not exist.
// Callers translate this into the restaurant_not_found failure kind.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrReservationNotFound is returned when a reservation code does not
// exist. Callers translate this into the not_found failure kind.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrAlreadyCancelled is returned when cancelling a reservation whose
// status is already cancelled. The second cancel reports an error, never
// a silent no-op.
var ErrAlreadyCancelled = errors.New("reservation already cancelled")
