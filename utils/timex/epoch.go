// File: epoch.go
// Title: Epoch Unit Resolver
// Description: Classifies bare integer timestamps as nano-, micro-, milli- or
//              seconds since the Unix epoch by magnitude and converts them to
//              UTC times through epoch milliseconds.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"math"
	"strings"
	"time"

	mdwerror "github.com/msto63/corekit/core/error"
	mdwerrors "github.com/msto63/corekit/core/errors"
)

// EpochUnit is the unit of an integer epoch value
type EpochUnit int

const (
	EpochUnspecified EpochUnit = iota
	Nanoseconds
	Microseconds
	Milliseconds
	Seconds
)

// Magnitude thresholds used by ClassifyEpoch
const (
	nanosThreshold        = 10_000_000_000_000_000 // 1e16
	microsThreshold       = 100_000_000_000_000    // 1e14
	millisThreshold       = 100_000_000_000        // 1e11
	negativeMillisCeiling = -30_000_000_000        // -3e10
)

// classifyOrder is the order in which units are tested; Seconds is the catch-all
var classifyOrder = [...]EpochUnit{Nanoseconds, Microseconds, Milliseconds, Seconds}

// String returns the unit name
func (u EpochUnit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	default:
		return "unspecified"
	}
}

// IsValid reports whether v plausibly is a value in this unit
func (u EpochUnit) IsValid(v int64) bool {
	switch u {
	case Nanoseconds:
		return absEpoch(v) >= nanosThreshold
	case Microseconds:
		return absEpoch(v) >= microsThreshold
	case Milliseconds:
		return v >= millisThreshold || v <= negativeMillisCeiling
	case Seconds:
		return true
	default:
		return false
	}
}

// ToMillis converts v to epoch milliseconds. Finer units truncate toward
// zero; seconds saturate at the int64 limits. EpochUnspecified yields 0.
func (u EpochUnit) ToMillis(v int64) int64 {
	switch u {
	case Nanoseconds:
		return v / 1_000_000
	case Microseconds:
		return v / 1_000
	case Milliseconds:
		return v
	case Seconds:
		switch {
		case v > math.MaxInt64/1000:
			return math.MaxInt64
		case v < math.MinInt64/1000:
			return math.MinInt64
		}
		return v * 1000
	default:
		return 0
	}
}

// ToInstant converts v to a UTC time through epoch milliseconds.
// EpochUnspecified yields the zero time.
func (u EpochUnit) ToInstant(v int64) time.Time {
	if u == EpochUnspecified {
		return time.Time{}
	}
	return time.UnixMilli(u.ToMillis(v)).UTC()
}

// absEpoch returns |v| without overflowing on math.MinInt64
func absEpoch(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// ClassifyEpoch returns the unit v most plausibly is expressed in. Values
// near the epoch origin are taken as seconds.
func ClassifyEpoch(v int64) EpochUnit {
	for _, u := range classifyOrder {
		if u.IsValid(v) {
			return u
		}
	}
	return Seconds
}

// FromEpoch converts v with the unit detected by ClassifyEpoch
func FromEpoch(v int64) time.Time {
	return ClassifyEpoch(v).ToInstant(v)
}

// FromEpochUnit converts v in the given unit. EpochUnspecified is an error.
func FromEpochUnit(v int64, unit EpochUnit) (time.Time, error) {
	if unit == EpochUnspecified {
		return time.Time{}, mdwerrors.TimexUnspecifiedUnit("FromEpochUnit", ErrUnspecifiedUnit)
	}
	return unit.ToInstant(v), nil
}

// ParseEpochUnit parses a unit name such as "ms", "micros" or "seconds".
// Blank and "auto" return EpochUnspecified.
func ParseEpochUnit(name string) (EpochUnit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return EpochUnspecified, nil
	case "ns", "nano", "nanos", "nanosecond", "nanoseconds":
		return Nanoseconds, nil
	case "us", "µs", "micro", "micros", "microsecond", "microseconds":
		return Microseconds, nil
	case "ms", "milli", "millis", "millisecond", "milliseconds":
		return Milliseconds, nil
	case "s", "sec", "secs", "second", "seconds":
		return Seconds, nil
	}
	return EpochUnspecified, mdwerrors.NewErrorBuilder(mdwerrors.ModuleTimex).
		Operation("ParseEpochUnit").
		Messagef("unknown epoch unit %q", name).
		Code(mdwerror.CodeUnsupportedUnit).
		Detail("unit", name).
		Build()
}
