package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codeRe = regexp.MustCompile(`^R[0-9A-F]{8}$`)

func TestNewReservationCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewReservationCode()
		assert.True(t, codeRe.MatchString(code), "code %q", code)
	}
}

func TestNewReservationCodeUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code := NewReservationCode()
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %q after %d draws", code, i)
		seen[code] = struct{}{}
	}
}
