// Package booking implements the reservation engine: the capacity-checked
// booking transaction, the advisory availability check, cancellation and
// contact-based listing, and the restaurant search.  Every operation
// reports failures as a typed *Failure so callers (HTTP handlers, the tool
// dispatch facade) can translate them into their own structured shapes.
package booking

import (
	"errors"
	"fmt"

	"github.com/iliyamo/restaurant-table-reservation/internal/slot"
)

// Failure kinds, stable across all surfaces.  These are the only error
// identifiers callers should branch on.
const (
	KindInvalidDatetime     = "invalid_datetime_format"
	KindUnparseableDatetime = "unparseable_datetime"
	KindDatetimeInPast      = "datetime_in_past"
	KindRestaurantNotFound  = "restaurant_not_found"
	KindReservationNotFound = "not_found"
	KindNoAvailability      = "no_availability"
	KindAlreadyCancelled    = "already_cancelled"
	KindDBError             = "db_error"
)

// Failure is a structured operation failure.  Kind identifies the failure;
// the remaining fields carry kind-specific detail: SeatsLeft for
// no_availability, NowISO/RequestedISO for datetime_in_past, Diagnostics
// for unparseable_datetime, and Err for the underlying storage error of a
// db_error.  Failures other than db_error are expected outcomes of normal
// operation, not system faults.
type Failure struct {
	Kind         string
	Message      string
	SeatsLeft    int
	NowISO       string
	RequestedISO string
	Diagnostics  *slot.Diagnostics
	Err          error
}

func (f *Failure) Error() string {
	if f.Message != "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return f.Kind
}

func (f *Failure) Unwrap() error { return f.Err }

// AsFailure extracts a *Failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind reports whether err is a booking failure of the given kind.
func IsKind(err error, kind string) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == kind
}

// dbError wraps an underlying storage error.  Storage faults are the only
// failure kind considered a genuine system fault; the booking transaction
// has fully rolled back by the time one is returned.
func dbError(err error) *Failure {
	return &Failure{Kind: KindDBError, Err: err}
}
