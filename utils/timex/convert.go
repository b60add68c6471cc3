// File: convert.go
// Title: Zoned Time Conversion Helpers
// Description: UTC normalization, day truncation and date comparison on
//              time.Time, plus text conversions built on the default parser.
//              The zero time is treated as absent and passed through.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with timezone helpers
// - 2026-10-18 v0.2.0: Null-propagating conversion helpers

package timex

import (
	"time"

	mdwerrors "github.com/msto63/corekit/core/errors"
)

// ToUTC returns t in UTC, keeping the zero time
func ToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// IsUTC reports whether t is located in time.UTC
func IsUTC(t time.Time) bool {
	return !t.IsZero() && t.Location() == time.UTC
}

// NowUTC returns the current time in UTC without a monotonic reading
func NowUTC() time.Time {
	return time.Now().UTC().Round(0)
}

// WithMillisPrecision truncates t to whole milliseconds
func WithMillisPrecision(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.Truncate(time.Millisecond)
}

// ToEpochMillisUTC returns t as milliseconds since the Unix epoch
func ToEpochMillisUTC(t time.Time) (int64, error) {
	if t.IsZero() {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleTimex, "ToEpochMillisUTC", t, "non-zero time")
	}
	return t.UnixMilli(), nil
}

// DateUTC returns midnight UTC of the given day
func DateUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AtStartOfDay returns midnight of t's day in t's location
func AtStartOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// HasTimeComponent reports whether any of hour, minute, second or
// nanosecond is non-zero
func HasTimeComponent(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0
}

// HasSameDate reports whether a and b fall on the same year, month and day,
// each read in its own location. Two zero times are equal; a zero and a
// non-zero time are not.
func HasSameDate(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() == b.IsZero()
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ToZonedUTC parses text with the local zone as fallback and returns it in
// UTC, or the zero time when text is blank or unparseable
func ToZonedUTC(text string) time.Time {
	return ToUTC(defaultParser.Parse(text, time.Local))
}

// ToZonedUTCChecked is ToZonedUTC reporting parse failures
func ToZonedUTCChecked(text string) (time.Time, error) {
	t, err := defaultParser.ParseChecked(text, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return ToUTC(t), nil
}

// ToLocalDateTime parses text with the local zone as fallback and returns
// it in the zone it resolved to, so the wall clock matches the text
func ToLocalDateTime(text string) time.Time {
	return defaultParser.Parse(text, time.Local)
}

// ToLocalDateTimeChecked is ToLocalDateTime reporting parse failures
func ToLocalDateTimeChecked(text string) (time.Time, error) {
	return defaultParser.ParseChecked(text, time.Local)
}
