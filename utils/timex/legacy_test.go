// File: legacy_test.go
// Title: Legacy Calendar Date Tests
// Description: Conversions, time-of-day detection and ordering of LegacyDate.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial test implementation

package timex

import (
	"testing"
	"time"
)

func TestLegacyDateConversion(t *testing.T) {
	now := WithMillisPrecision(NowUTC())

	d := ToLegacyDate(now)
	if d == nil {
		t.Fatal("ToLegacyDate() = nil, want value")
	}
	if got := FromLegacyDate(d); !got.Equal(now) || !IsUTC(got) {
		t.Errorf("FromLegacyDate(ToLegacyDate(%v)) = %v", now, got)
	}

	// date-only values convert the same way
	dateOnly := NewLegacyDateOnly(now.UnixMilli())
	if got := FromLegacyDate(dateOnly); !got.Equal(now) {
		t.Errorf("FromLegacyDate(date only) = %v, want %v", got, now)
	}
	if !dateOnly.DateOnly() || d.DateOnly() {
		t.Error("DateOnly() does not reflect the constructor")
	}

	if ToLegacyDate(time.Time{}) != nil {
		t.Error("ToLegacyDate(zero) != nil")
	}
	if !FromLegacyDate(nil).IsZero() {
		t.Error("FromLegacyDate(nil) is not zero")
	}
}

func TestLegacyDateFromLocal(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")
	wall := time.Date(2016, 9, 4, 0, 0, 0, 0, time.UTC)

	got := LegacyDateFromLocal(wall, newYork)
	if want := time.Date(2016, 9, 4, 4, 0, 0, 0, time.UTC).UnixMilli(); got.UnixMilli() != want {
		t.Errorf("LegacyDateFromLocal().UnixMilli() = %d, want %d", got.UnixMilli(), want)
	}
	if !got.HasTimeComponent() {
		t.Error("HasTimeComponent() = false for 04:00 UTC")
	}
	if LegacyDateFromLocal(time.Time{}, newYork) != nil {
		t.Error("LegacyDateFromLocal(zero) != nil")
	}

	utc := LegacyDateFromLocal(wall, time.UTC)
	if utc.HasTimeComponent() {
		t.Error("HasTimeComponent() = true for midnight UTC")
	}
}

func TestLegacyDateHasTimeComponent(t *testing.T) {
	midnight := DateUTC(2016, time.September, 4).UnixMilli()
	before := DateUTC(1950, time.January, 1).UnixMilli()

	testCases := []struct {
		name     string
		input    *LegacyDate
		expected bool
	}{
		{"Midnight", NewLegacyDate(midnight), false},
		{"One millisecond later", NewLegacyDate(midnight + 1), true},
		{"Midnight before epoch", NewLegacyDate(before), false},
		{"Before epoch with time", NewLegacyDate(before - 1), true},
		{"Nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.input.HasTimeComponent(); got != tc.expected {
				t.Errorf("HasTimeComponent() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestCompareLegacy(t *testing.T) {
	earlier := NewLegacyDate(1_000)
	later := NewLegacyDate(2_000)

	testCases := []struct {
		name     string
		a, b     *LegacyDate
		expected int
	}{
		{"Both nil", nil, nil, 0},
		{"Nil first", nil, earlier, -1},
		{"Nil second", earlier, nil, 1},
		{"Less", earlier, later, -1},
		// a greater value must compare positive
		{"Greater", later, earlier, 1},
		{"Equal instants", earlier, NewLegacyDateOnly(1_000), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompareLegacy(tc.a, tc.b); got != tc.expected {
				t.Errorf("CompareLegacy(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestLegacyDateString(t *testing.T) {
	d := NewLegacyDate(DateUTC(2016, time.September, 4).UnixMilli())
	if got := d.String(); got != "2016-09-04T00:00:00.000000000Z" {
		t.Errorf("String() = %q", got)
	}
	var nilDate *LegacyDate
	if got := nilDate.String(); got != "<nil>" {
		t.Errorf("nil String() = %q, want %q", got, "<nil>")
	}
}
