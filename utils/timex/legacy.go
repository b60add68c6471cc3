// File: legacy.go
// Title: Legacy Calendar Dates
// Description: LegacyDate models the zone-less, millisecond values used by
//              older calendar APIs and SQL DATE columns, and converts them
//              to and from time.Time.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"cmp"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// LegacyDate is a point in time in epoch milliseconds without a zone. A nil
// *LegacyDate is the absent value.
type LegacyDate struct {
	millis   int64
	dateOnly bool
}

// NewLegacyDate returns a date-time value
func NewLegacyDate(millis int64) *LegacyDate {
	return &LegacyDate{millis: millis}
}

// NewLegacyDateOnly returns a value that carries no time of day, like a SQL
// DATE
func NewLegacyDateOnly(millis int64) *LegacyDate {
	return &LegacyDate{millis: millis, dateOnly: true}
}

// LegacyDateFromLocal reads the wall clock of wall in loc and returns it as
// a LegacyDate. A nil loc means time.Local.
func LegacyDateFromLocal(wall time.Time, loc *time.Location) *LegacyDate {
	if wall.IsZero() {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	y, m, d := wall.Date()
	hh, mm, ss := wall.Clock()
	return NewLegacyDate(time.Date(y, m, d, hh, mm, ss, wall.Nanosecond(), loc).UnixMilli())
}

// ToLegacyDate converts t, or returns nil for the zero time
func ToLegacyDate(t time.Time) *LegacyDate {
	if t.IsZero() {
		return nil
	}
	return NewLegacyDate(t.UnixMilli())
}

// FromLegacyDate returns d in UTC, or the zero time for nil
func FromLegacyDate(d *LegacyDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return time.UnixMilli(d.millis).UTC()
}

// UnixMilli returns the epoch milliseconds
func (d *LegacyDate) UnixMilli() int64 {
	return d.millis
}

// DateOnly reports whether d was created as a date without time of day
func (d *LegacyDate) DateOnly() bool {
	return d.dateOnly
}

// HasTimeComponent reports whether d is not at a UTC day boundary
func (d *LegacyDate) HasTimeComponent() bool {
	return d != nil && d.millis%millisPerDay != 0
}

// String returns the canonical ISO form
func (d *LegacyDate) String() string {
	if d == nil {
		return "<nil>"
	}
	return FormatISO(FromLegacyDate(d))
}

// CompareLegacy orders two legacy dates by instant. nil sorts before any
// value; two nils are equal.
func CompareLegacy(a, b *LegacyDate) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(a.millis, b.millis)
}
