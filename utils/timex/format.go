// File: format.go
// Title: Canonical ISO-8601 Formatter
// Description: Renders times as fixed-width UTC strings with nine fractional
//              digits. Unlike time.RFC3339Nano trailing zeros are kept, so
//              consumers can rely on a stable length.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with predefined formats
// - 2026-10-18 v0.2.0: Replaced format table with the canonical formatter

package timex

import "time"

// ISO8601Nanos is the time package layout of the canonical form. It matches
// FormatISO for UTC times with years 0000 to 9999.
const ISO8601Nanos = "2006-01-02T15:04:05.000000000Z"

// ISOLength is the length of a canonical string for years 0000 to 9999
const ISOLength = len(ISO8601Nanos)

// FormatISO returns t in UTC as yyyy-MM-ddTHH:mm:ss.nnnnnnnnnZ, or "" for the
// zero time
func FormatISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return string(AppendISO(make([]byte, 0, ISOLength+1), t))
}

// AppendISO appends the canonical form of t to dst. The zero time appends
// nothing. Years above 9999 get a '+' prefix and negative years a '-' prefix.
func AppendISO(dst []byte, t time.Time) []byte {
	if t.IsZero() {
		return dst
	}
	t = t.UTC()

	year := t.Year()
	switch {
	case year > 9999:
		dst = append(dst, '+')
	case year < 0:
		dst = append(dst, '-')
		year = -year
	}
	dst = appendPadded(dst, year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, int(t.Month()), 2)
	dst = append(dst, '-')
	dst = appendPadded(dst, t.Day(), 2)
	dst = append(dst, 'T')
	dst = appendPadded(dst, t.Hour(), 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Minute(), 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Second(), 2)
	dst = append(dst, '.')
	dst = appendPadded(dst, t.Nanosecond(), 9)
	return append(dst, 'Z')
}

// FormatISOString parses text with the local zone as fallback and returns its
// canonical form, or "" when text is blank or unparseable
func FormatISOString(text string) string {
	return FormatISO(ToZonedUTC(text))
}

// appendPadded appends a non-negative v with at least width digits
func appendPadded(dst []byte, v, width int) []byte {
	var buf [20]byte
	i := len(buf)
	for v >= 10 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	buf[i] = byte('0' + v)
	for n := len(buf) - i; n < width; n++ {
		dst = append(dst, '0')
	}
	return append(dst, buf[i:]...)
}
