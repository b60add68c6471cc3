// File: between.go
// Title: Calendar Distance
// Description: Whole calendar units between the UTC dates of two times.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with business day counting
// - 2026-10-18 v0.2.0: Calendar units on date-only projections

package timex

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/corekit/core/error"
	mdwerrors "github.com/msto63/corekit/core/errors"
)

// CalendarUnit is a date-based unit for TimeBetween
type CalendarUnit int

const (
	UnitUnspecified CalendarUnit = iota
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
)

var calendarUnitNames = map[CalendarUnit]string{
	Days:      "days",
	Weeks:     "weeks",
	Months:    "months",
	Years:     "years",
	Decades:   "decades",
	Centuries: "centuries",
	Millennia: "millennia",
}

// String returns the plural unit name
func (u CalendarUnit) String() string {
	if name, ok := calendarUnitNames[u]; ok {
		return name
	}
	return "unspecified"
}

// ParseCalendarUnit parses a unit name, singular or plural
func ParseCalendarUnit(name string) (CalendarUnit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "day":
		n = "days"
	case "week":
		n = "weeks"
	case "month":
		n = "months"
	case "year":
		n = "years"
	case "decade":
		n = "decades"
	case "century":
		n = "centuries"
	case "millennium":
		n = "millennia"
	}
	for unit, unitName := range calendarUnitNames {
		if unitName == n {
			return unit, nil
		}
	}
	return UnitUnspecified, mdwerrors.NewErrorBuilder(mdwerrors.ModuleTimex).
		Operation("ParseCalendarUnit").
		Messagef("unknown calendar unit %q", name).
		Code(mdwerror.CodeUnsupportedUnit).
		Detail("unit", name).
		Build()
}

// TimeBetween returns the number of whole units between the UTC dates of a
// and b. Time of day is ignored and the result is never negative.
func TimeBetween(a, b time.Time, unit CalendarUnit) (int64, error) {
	if a.IsZero() || b.IsZero() {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleTimex, "TimeBetween", "zero time", "two non-zero times")
	}

	var n int64
	switch unit {
	case Days:
		n = daysBetween(a, b)
	case Weeks:
		n = daysBetween(a, b) / 7
	case Months:
		n = monthsBetween(a, b)
	case Years:
		n = monthsBetween(a, b) / 12
	case Decades:
		n = monthsBetween(a, b) / 120
	case Centuries:
		n = monthsBetween(a, b) / 1200
	case Millennia:
		n = monthsBetween(a, b) / 12000
	default:
		return 0, mdwerrors.TimexUnspecifiedUnit("TimeBetween", ErrUnspecifiedUnit)
	}
	if n < 0 {
		n = -n
	}
	return n, nil
}

func epochDay(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return DateUTC(y, m, d).Unix() / 86400
}

func daysBetween(a, b time.Time) int64 {
	return epochDay(b) - epochDay(a)
}

// monthsBetween counts whole months from a to b; a partial month, judged by
// day of month, does not count
func monthsBetween(a, b time.Time) int64 {
	packed := func(t time.Time) int64 {
		y, m, d := t.UTC().Date()
		return (int64(y)*12+int64(m)-1)*32 + int64(d)
	}
	return (packed(b) - packed(a)) / 32
}
