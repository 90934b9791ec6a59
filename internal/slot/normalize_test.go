package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fixed reference instant: 2026-09-15 17:00 in the reference zone.
func afternoonNow() time.Time {
	return time.Date(2026, 9, 15, 17, 0, 0, 0, ist)
}

func TestNormalizeIsoPassthrough(t *testing.T) {
	key, diag, err := Normalize("2026-09-20 19:30", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-20 19:30", key)
	assert.Equal(t, "iso", diag.ParsedAs)
	assert.False(t, diag.AdjustedToTomorrow)

	// Normalizing an already-canonical key is the identity.
	again, _, err := Normalize(key, afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, key, again)
}

func TestNormalizeRelativeDayDefaults(t *testing.T) {
	for _, in := range []string{"today", "tonight"} {
		key, diag, err := Normalize(in, afternoonNow())
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "2026-09-15 19:00", key, "input %q", in)
		assert.Equal(t, "default_evening", diag.ParsedAs)
	}

	key, _, err := Normalize("tomorrow", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 19:00", key)
}

func TestNormalizeBareTimeStillAhead(t *testing.T) {
	key, diag, err := Normalize("7pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15 19:00", key)
	assert.Equal(t, "time_only", diag.ParsedAs)
	assert.False(t, diag.AdjustedToTomorrow)
}

func TestNormalizeBareTimeRollsForward(t *testing.T) {
	// 7am has already passed at 17:00, so the slot moves exactly one day.
	key, diag, err := Normalize("7am", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 07:00", key)
	assert.True(t, diag.AdjustedToTomorrow)

	// The boundary is strict: a slot equal to now also rolls forward.
	key, diag, err = Normalize("5pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 17:00", key)
	assert.True(t, diag.AdjustedToTomorrow)
}

func TestNormalizeTomorrowWithTime(t *testing.T) {
	key, diag, err := Normalize("tomorrow 7:30 pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 19:30", key)
	assert.False(t, diag.AdjustedToTomorrow)

	// A past-relative clock never rolls an extra day when the offset is
	// already tomorrow.
	key, _, err = Normalize("tomorrow 7am", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 07:00", key)
}

func TestNormalizeFreeTextLinkingWords(t *testing.T) {
	key, diag, err := Normalize("dinner at 7:30 pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15 19:30", key)
	assert.Equal(t, "found_time_token", diag.ParsedAs)

	// "tomorrow" anywhere in the phrase applies the one-day offset.
	key, _, err = Normalize("tomorrow at 6 pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 18:00", key)

	key, _, err = Normalize("table for 8pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15 20:00", key)
}

func TestNormalizeTwelveHourEdges(t *testing.T) {
	key, _, err := Normalize("tomorrow 12am", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 00:00", key)

	key, _, err = Normalize("tomorrow 12pm", afternoonNow())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16 12:00", key)
}

func TestNormalizeUnrecognized(t *testing.T) {
	cases := []string{"next friday evening", "25:00", "7:75pm", "13pm", "soonish"}
	for _, in := range cases {
		_, diag, err := Normalize(in, afternoonNow())
		require.ErrorIs(t, err, ErrUnrecognized, "input %q", in)
		assert.Equal(t, "unrecognized_format", diag.Reason, "input %q", in)
		assert.Equal(t, in, diag.Input)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	_, diag, err := Normalize("   ", afternoonNow())
	require.ErrorIs(t, err, ErrUnrecognized)
	assert.Equal(t, "empty_input", diag.Reason)
}

func TestNormalizeDiagnosticsCarryReference(t *testing.T) {
	now := afternoonNow()
	_, diag, err := Normalize("7pm", now)
	require.NoError(t, err)
	assert.Equal(t, now.Format(time.RFC3339), diag.NowISO)
	assert.Equal(t, "7pm", diag.Input)
	assert.NotEmpty(t, diag.RequestedISO)
}
