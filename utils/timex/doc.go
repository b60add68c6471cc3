// Package timex parses dates written in dozens of common layouts and renders
// them in one canonical, fixed-width UTC form.
//
// Package: timex
// Title: Flexible Date Parsing and Canonical ISO-8601 Formatting
// Description: A permissive multi-layout date parser, a fixed-width ISO-8601
//              formatter, epoch unit detection for bare integers and a set of
//              small conversion helpers around time.Time.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-18 v0.2.0: Rewritten around a declarative layout table, canonical
//                       formatter and epoch unit resolver
//
// Package Overview:
//
// # Canonical Format
//
// FormatISO renders any time as yyyy-MM-ddTHH:mm:ss.nnnnnnnnnZ in UTC. The
// fraction always has nine digits, so the result is 30 characters long for
// years 0000 to 9999:
//
//	timex.FormatISO(t) // "2016-12-21T16:46:39.830000000Z"
//
// The zero time.Time stands for an absent value. FormatISO returns "" for it
// and every helper that accepts a time passes the zero value through.
//
// # Parsing
//
// Parse and ParseChecked try an ordered table of layouts and return the first
// one that matches the whole text:
//
//   - ISO-8601 with or without time, offset and [Region/City] zone id
//   - RFC 1123 and the output of time.Time.String
//   - M/d/yyyy, M-d-yyyy and M.d.yyyy, also with two-digit years
//   - yyyy/M/d, yyyyMMMdd (2016sep04) and yyyyMMdd (20160904)
//   - textual months: "4 sep 2016", "04-sep-16", "September 4, 2016", "Sep 2016"
//
// Numeric and textual layouts accept an optional time of day with seconds,
// fractions up to nanoseconds, AM/PM and an offset. Month names and literals
// are matched case-insensitively.
//
// Text without a zone is resolved in the fallback location passed by the
// caller. Invalid calendar dates such as 2003-02-29 are rejected, never
// clamped. Blank text is not an error: both variants return the zero time.
//
//	t, err := timex.ParseChecked("09/04/16 10:30 PM", time.UTC)
//	if errors.Is(err, timex.ErrDateParse) {
//		// malformed
//	}
//
// Two-digit years resolve into the window from 80 years before to 20 years
// after the moment the Parser was built. WithPivotPerCall moves the window
// along with the clock instead.
//
// # Epoch Values
//
// ClassifyEpoch guesses the unit of a bare integer from its magnitude:
//
//	|v| >= 1e16             nanoseconds
//	|v| >= 1e14             microseconds
//	v >= 1e11 || v <= -3e10 milliseconds
//	otherwise               seconds
//
// FromEpoch converts with the detected unit, FromEpochUnit with an explicit one.
//
// # Helpers
//
// AtStartOfDay, HasTimeComponent, HasSameDate, TimeBetween and RandomZonedUTC
// work on time.Time. LegacyDate models zone-less millisecond values coming
// from older calendar APIs and SQL DATE columns.
//
// # Concurrency
//
// Parsers are immutable after construction and safe for concurrent use. The
// package-level functions share one default Parser.
package timex
