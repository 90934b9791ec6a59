// Package slot converts time expressions into canonical slot keys.  A slot
// key is the string "YYYY-MM-DD HH:MM" rendered in the reference timezone;
// it identifies a discrete bookable point in time for a restaurant.  All
// functions in this package are pure: they depend only on their arguments.
package slot

import (
	"errors"
	"strings"
	"time"
)

// KeyLayout is the canonical slot key layout.  Keys are minute-granular;
// seconds are always truncated.
const KeyLayout = "2006-01-02 15:04"

// ErrInvalidKey is returned by ParseKey when the input is not an ISO-like
// datetime.  Callers surface it as invalid_datetime_format.
var ErrInvalidKey = errors.New("invalid_datetime_format")

// isoLayouts are tried in order by ParseKey.  Zoned layouts are parsed with
// their own offset and then converted to the reference location; naive
// layouts are interpreted directly in the reference location.
var (
	isoZonedLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04Z07:00",
	}
	isoNaiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// ParseKey parses a strict ISO-like datetime string ("YYYY-MM-DD HH:MM",
// optionally with a T separator, seconds, or a zone offset) into a time in
// loc.  Input with no zone information is assumed to already be in loc;
// zoned input is converted.  Informal expressions are rejected; use
// Normalize for those.
func ParseKey(raw string, loc *time.Location) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return time.Time{}, ErrInvalidKey
	}
	if !strings.Contains(s, "T") {
		s = strings.ReplaceAll(s, " ", "T")
	}
	for _, layout := range isoZonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc).Truncate(time.Minute), nil
		}
	}
	for _, layout := range isoNaiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Truncate(time.Minute), nil
		}
	}
	return time.Time{}, ErrInvalidKey
}

// FormatKey renders t as a canonical slot key in t's own location.  Callers
// must convert t to the reference timezone first; ParseKey and Normalize
// already return times in the reference location.
func FormatKey(t time.Time) string {
	return t.Format(KeyLayout)
}
