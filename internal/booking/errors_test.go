package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureErrorString(t *testing.T) {
	assert.Equal(t, "no_availability", (&Failure{Kind: KindNoAvailability}).Error())
	assert.Equal(t, "invalid_datetime_format: use YYYY-MM-DD HH:MM",
		(&Failure{Kind: KindInvalidDatetime, Message: "use YYYY-MM-DD HH:MM"}).Error())
	assert.Equal(t, "db_error: boom",
		(&Failure{Kind: KindDBError, Err: errors.New("boom")}).Error())
}

func TestAsFailureThroughWrapping(t *testing.T) {
	inner := &Failure{Kind: KindAlreadyCancelled}
	wrapped := fmt.Errorf("cancel: %w", inner)

	f, ok := AsFailure(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindAlreadyCancelled, f.Kind)

	_, ok = AsFailure(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	err := dbError(errors.New("connection reset"))
	assert.True(t, IsKind(err, KindDBError))
	assert.False(t, IsKind(err, KindNoAvailability))
	assert.False(t, IsKind(nil, KindDBError))
}

func TestDBErrorUnwrap(t *testing.T) {
	cause := errors.New("lock wait timeout")
	err := dbError(cause)
	assert.ErrorIs(t, err, cause)
}
