package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ist mirrors the production reference timezone without depending on the
// host's tzdata.
var ist = time.FixedZone("IST", 5*3600+30*60)

func TestParseKeyCanonical(t *testing.T) {
	got, err := ParseKey("2026-09-15 19:30", ist)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15 19:30", FormatKey(got))
	assert.Equal(t, ist.String(), got.Location().String())
}

func TestParseKeyIsoVariants(t *testing.T) {
	cases := map[string]string{
		"2026-09-15T19:30":    "2026-09-15 19:30",
		"2026-09-15T19:30:45": "2026-09-15 19:30", // seconds truncated
		"2026-09-15":          "2026-09-15 00:00", // date only
		"  2026-09-15 19:30 ": "2026-09-15 19:30", // whitespace tolerated
	}
	for in, want := range cases {
		got, err := ParseKey(in, ist)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, FormatKey(got), "input %q", in)
	}
}

func TestParseKeyZonedInputConverted(t *testing.T) {
	// 14:00 UTC is 19:30 in the reference zone.
	got, err := ParseKey("2026-09-15T14:00:00Z", ist)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15 19:30", FormatKey(got))
}

func TestParseKeyRejectsInformal(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "7pm", "15/09/2026", "2026-13-40 19:00"} {
		_, err := ParseKey(in, ist)
		assert.ErrorIs(t, err, ErrInvalidKey, "input %q", in)
	}
}
