package slot

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned when an informal expression cannot be mapped
// to a slot key.  The caller receives Diagnostics alongside the error so it
// can ask a clarifying question instead of guessing.
var ErrUnrecognized = errors.New("unrecognized_format")

// Diagnostics records how a normalization attempt was resolved.  It mirrors
// the structured result shape surfaced to callers on both success and
// failure: the reference "now", the raw input and the parse path taken.
type Diagnostics struct {
	NowISO             string `json:"now_iso"`
	Input              string `json:"input"`
	ParsedAs           string `json:"parsed_as,omitempty"`
	RequestedISO       string `json:"requested_iso,omitempty"`
	AdjustedToTomorrow bool   `json:"adjusted_to_tomorrow,omitempty"`
	Reason             string `json:"error,omitempty"`
}

// clockRe matches bare time-of-day expressions: "7pm", "7:30 pm", "19:00".
var clockRe = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*$`)

// linkRe splits free text on the linking words used in booking phrases,
// e.g. "dinner on 2025-11-10 at 19:00".
var linkRe = regexp.MustCompile(`\bat\b|\bfor\b|\bon\b`)

// defaultEveningHour is used when "today"/"tonight" carries no time of day.
const defaultEveningHour = 19

// Normalize converts an informal or ISO-like datetime expression into a
// canonical slot key relative to now.  The location of now is the reference
// timezone; the returned key is always rendered in it.  Accepted forms, in
// priority order:
//
//  1. ISO-like strings, with or without zone information (see ParseKey).
//  2. "today"/"tonight" (offset 0) or "tomorrow" (offset 1), optionally
//     followed by a time of day.
//  3. A bare time of day ("7pm", "19:00"): interpreted as today; when the
//     result is not strictly after now it rolls forward exactly one day.
//  4. "today"/"tonight" alone: defaults to 19:00.
//  5. Free text with linking words: segments are scanned right to left for
//     the first recognizable time token; a literal "tomorrow" anywhere in
//     the input applies a one-day offset.
//
// Anything else fails with ErrUnrecognized.  Normalize never guesses: an
// unmatched input is a typed failure, not a best-effort pick.
func Normalize(raw string, now time.Time) (string, Diagnostics, error) {
	diag := Diagnostics{NowISO: now.Format(time.RFC3339), Input: raw}
	loc := now.Location()

	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		diag.Reason = "empty_input"
		return "", diag, ErrUnrecognized
	}

	// 1) Already ISO-ish?
	if t, err := ParseKey(s, loc); err == nil {
		diag.ParsedAs = "iso"
		diag.RequestedISO = t.Format(time.RFC3339)
		return FormatKey(t), diag, nil
	}

	// 2) Relative-day prefixes.
	tokens := strings.Fields(s)
	dayOffset := 0
	rest := s
	switch tokens[0] {
	case "today", "tonight":
		rest = strings.TrimSpace(strings.Join(tokens[1:], " "))
	case "tomorrow":
		dayOffset = 1
		rest = strings.TrimSpace(strings.Join(tokens[1:], " "))
	}

	// 3) Prefix with no time of day: default to the evening slot.
	if rest == "" {
		t := combine(now, dayOffset, defaultEveningHour, 0, loc)
		diag.ParsedAs = "default_evening"
		diag.RequestedISO = t.Format(time.RFC3339)
		return FormatKey(t), diag, nil
	}

	// 4) Bare time-of-day expression.
	if h, m, ok := parseClock(rest); ok {
		t := combine(now, dayOffset, h, m, loc)
		if dayOffset == 0 && !t.After(now) {
			t = t.AddDate(0, 0, 1)
			diag.AdjustedToTomorrow = true
		}
		diag.ParsedAs = "time_only"
		diag.RequestedISO = t.Format(time.RFC3339)
		return FormatKey(t), diag, nil
	}

	// 5) Free text: scan segments between linking words, right to left,
	// for the first recognizable time token.
	parts := linkRe.Split(s, -1)
	for i := len(parts) - 1; i >= 0; i-- {
		h, m, ok := parseClock(strings.TrimSpace(parts[i]))
		if !ok {
			continue
		}
		if strings.Contains(s, "tomorrow") {
			dayOffset = 1
		}
		t := combine(now, dayOffset, h, m, loc)
		if dayOffset == 0 && !t.After(now) {
			t = t.AddDate(0, 0, 1)
			diag.AdjustedToTomorrow = true
		}
		diag.ParsedAs = "found_time_token"
		diag.RequestedISO = t.Format(time.RFC3339)
		return FormatKey(t), diag, nil
	}

	diag.Reason = "unrecognized_format"
	return "", diag, ErrUnrecognized
}

// parseClock parses a time-of-day token.  Hours 1-12 with an am/pm suffix
// follow the standard 12-hour convention (12am -> 0, 12pm -> 12, pm adds 12
// for hours below 12); an hour with no suffix is taken as 24-hour.  Out of
// range values are rejected rather than wrapped.
func parseClock(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return 0, 0, false
	}
	switch strings.ToLower(m[3]) {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour < 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

// combine builds the wall-clock time hour:minute on the day dayOffset days
// after now, in the reference location.
func combine(now time.Time, dayOffset, hour, minute int, loc *time.Location) time.Time {
	day := now.AddDate(0, 0, dayOffset)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}
