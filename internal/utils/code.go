package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewReservationCode returns a human-shareable reservation code: a fixed
// "R" prefix followed by the first eight uppercase hex characters of a
// random v4 UUID.  Codes are unique with overwhelming probability; the
// UNIQUE constraint on reservations.reservation_code backstops the rest.
func NewReservationCode() string {
	u := uuid.New()
	return "R" + strings.ToUpper(hex.EncodeToString(u[:4]))
}
