// File: convert_test.go
// Title: Conversion Helper Tests
// Description: Null propagation, day truncation, date comparison, calendar
//              distance and random sampling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-18 v0.2.0: Tests for the conversion helpers

package timex

import (
	"math/rand/v2"
	"testing"
	"time"

	mdwerror "github.com/msto63/corekit/core/error"
)

func TestToUTCAndIsUTC(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")
	local := time.Date(2016, 9, 4, 0, 0, 0, 0, newYork)

	if IsUTC(local) {
		t.Error("IsUTC(New York time) = true, want false")
	}
	if got := ToUTC(local); !IsUTC(got) || !got.Equal(local) {
		t.Errorf("ToUTC(%v) = %v, want same instant in UTC", local, got)
	}
	if !IsUTC(NowUTC()) {
		t.Error("IsUTC(NowUTC()) = false, want true")
	}
	if got := ToUTC(time.Time{}); !got.IsZero() {
		t.Errorf("ToUTC(zero) = %v, want zero time", got)
	}
	if IsUTC(time.Time{}) {
		t.Error("IsUTC(zero) = true, want false")
	}
}

func TestAtStartOfDay(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")
	input := time.Date(2016, 9, 4, 17, 30, 12, 345, newYork)

	got := AtStartOfDay(input)
	if want := time.Date(2016, 9, 4, 0, 0, 0, 0, newYork); !got.Equal(want) {
		t.Errorf("AtStartOfDay(%v) = %v, want %v", input, got, want)
	}
	if got.Location() != newYork {
		t.Errorf("AtStartOfDay() location = %v, want %v", got.Location(), newYork)
	}
	if HasTimeComponent(got) {
		t.Errorf("HasTimeComponent(%v) = true, want false", got)
	}
	if !AtStartOfDay(time.Time{}).IsZero() {
		t.Error("AtStartOfDay(zero) is not zero")
	}

	day := DateUTC(2016, time.September, 4)
	if !AtStartOfDay(day).Equal(day) {
		t.Errorf("AtStartOfDay(%v) changed a value already at midnight", day)
	}
}

func TestHasTimeComponent(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"Midnight", sampleUTC, false},
		{"Hour", sampleUTC.Add(time.Hour), true},
		{"Minute", sampleUTC.Add(time.Minute), true},
		{"Second", sampleUTC.Add(time.Second), true},
		{"Nanosecond", sampleUTC.Add(time.Nanosecond), true},
		{"Zero time", time.Time{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasTimeComponent(tc.input); got != tc.expected {
				t.Errorf("HasTimeComponent(%v) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestHasSameDate(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     time.Time
		expected bool
	}{
		{"Same day different time", sampleUTC, sampleUTC.Add(23 * time.Hour), true},
		{"Next day", sampleUTC, sampleUTC.Add(24 * time.Hour), false},
		{"Same day other year", sampleUTC, sampleUTC.AddDate(1, 0, 0), false},
		{"Both zero", time.Time{}, time.Time{}, true},
		{"First zero", time.Time{}, sampleUTC, false},
		{"Second zero", sampleUTC, time.Time{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasSameDate(tc.a, tc.b); got != tc.expected {
				t.Errorf("HasSameDate(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestWithMillisPrecision(t *testing.T) {
	input := time.Date(2016, 12, 21, 16, 46, 39, 830123456, time.UTC)
	if got, want := WithMillisPrecision(input), time.Date(2016, 12, 21, 16, 46, 39, 830000000, time.UTC); !got.Equal(want) {
		t.Errorf("WithMillisPrecision(%v) = %v, want %v", input, got, want)
	}
	if !WithMillisPrecision(time.Time{}).IsZero() {
		t.Error("WithMillisPrecision(zero) is not zero")
	}
}

func TestToEpochMillisUTC(t *testing.T) {
	got, err := ToEpochMillisUTC(sampleUTC)
	if err != nil {
		t.Fatalf("ToEpochMillisUTC() unexpected error: %v", err)
	}
	if got != 1_472_947_200_000 {
		t.Errorf("ToEpochMillisUTC(%v) = %d, want 1472947200000", sampleUTC, got)
	}
	if back := FromEpoch(got); !back.Equal(sampleUTC) {
		t.Errorf("FromEpoch(%d) = %v, want %v", got, back, sampleUTC)
	}

	_, err = ToEpochMillisUTC(time.Time{})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ToEpochMillisUTC(zero) error = %v, want INVALID_INPUT", err)
	}
}

func TestTextConversions(t *testing.T) {
	want := time.Date(2016, 9, 4, 0, 0, 0, 0, time.Local)

	if got := ToZonedUTC("09/04/2016"); !got.Equal(want) || !IsUTC(got) {
		t.Errorf("ToZonedUTC() = %v, want %v in UTC", got, want)
	}
	if got, err := ToZonedUTCChecked("09/04/2016"); err != nil || !got.Equal(want) {
		t.Errorf("ToZonedUTCChecked() = %v, %v, want %v", got, err, want)
	}
	if got := ToLocalDateTime("09/04/2016"); got.Hour() != 0 || got.Day() != 4 {
		t.Errorf("ToLocalDateTime() = %v, want midnight on the 4th", got)
	}

	for _, blank := range []string{"", "     "} {
		if got := ToZonedUTC(blank); !got.IsZero() {
			t.Errorf("ToZonedUTC(%q) = %v, want zero time", blank, got)
		}
		if got, err := ToZonedUTCChecked(blank); err != nil || !got.IsZero() {
			t.Errorf("ToZonedUTCChecked(%q) = %v, %v, want zero time", blank, got, err)
		}
		if got := ToLocalDateTime(blank); !got.IsZero() {
			t.Errorf("ToLocalDateTime(%q) = %v, want zero time", blank, got)
		}
		if got, err := ToLocalDateTimeChecked(blank); err != nil || !got.IsZero() {
			t.Errorf("ToLocalDateTimeChecked(%q) = %v, %v, want zero time", blank, got, err)
		}
	}

	if _, err := ToLocalDateTimeChecked("20030235"); err == nil {
		t.Error("ToLocalDateTimeChecked(20030235) expected error, got nil")
	}
}

func TestTimeBetween(t *testing.T) {
	newYork := mustLoad(t, "America/New_York")

	testCases := []struct {
		name     string
		a, b     time.Time
		unit     CalendarUnit
		expected int64
	}{
		{"Days", DateUTC(2016, 1, 31), DateUTC(2016, 2, 29), Days, 29},
		{"Weeks", DateUTC(2016, 1, 1), DateUTC(2016, 1, 15), Weeks, 2},
		{"Partial week", DateUTC(2016, 1, 1), DateUTC(2016, 1, 14), Weeks, 1},
		{"Short month", DateUTC(2016, 1, 31), DateUTC(2016, 2, 29), Months, 0},
		{"Two months", DateUTC(2016, 1, 31), DateUTC(2016, 3, 31), Months, 2},
		{"Almost four years", DateUTC(2016, 9, 4), DateUTC(2020, 9, 3), Years, 3},
		{"Four years", DateUTC(2016, 9, 4), DateUTC(2020, 9, 4), Years, 4},
		{"Decades", DateUTC(1950, 1, 1), DateUTC(2016, 9, 4), Decades, 6},
		{"Centuries", DateUTC(1850, 1, 1), DateUTC(2016, 9, 4), Centuries, 1},
		{"Millennia", DateUTC(999, 1, 1), DateUTC(2016, 9, 4), Millennia, 1},
		{"Time of day ignored", sampleUTC.Add(23 * time.Hour), DateUTC(2016, 9, 5), Days, 1},
		{"UTC projection", time.Date(2016, 9, 4, 23, 0, 0, 0, newYork), DateUTC(2016, 9, 5), Days, 0},
		{"Same day", sampleUTC, sampleUTC.Add(time.Hour), Days, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TimeBetween(tc.a, tc.b, tc.unit)
			if err != nil {
				t.Fatalf("TimeBetween() unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("TimeBetween(%v, %v, %v) = %d, want %d", tc.a, tc.b, tc.unit, got, tc.expected)
			}

			reversed, err := TimeBetween(tc.b, tc.a, tc.unit)
			if err != nil {
				t.Fatalf("TimeBetween() reversed unexpected error: %v", err)
			}
			if reversed != got {
				t.Errorf("TimeBetween reversed = %d, want %d", reversed, got)
			}
		})
	}
}

func TestTimeBetweenErrors(t *testing.T) {
	if _, err := TimeBetween(sampleUTC, sampleUTC, UnitUnspecified); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("TimeBetween(UnitUnspecified) error = %v, want INVALID_INPUT", err)
	}
	if _, err := TimeBetween(time.Time{}, sampleUTC, Days); err == nil {
		t.Error("TimeBetween(zero) expected error, got nil")
	}
}

func TestParseCalendarUnit(t *testing.T) {
	testCases := []struct {
		input    string
		expected CalendarUnit
	}{
		{"days", Days},
		{"Day", Days},
		{"week", Weeks},
		{"months", Months},
		{"YEARS", Years},
		{"decade", Decades},
		{"century", Centuries},
		{"millennia", Millennia},
	}

	for _, tc := range testCases {
		got, err := ParseCalendarUnit(tc.input)
		if err != nil || got != tc.expected {
			t.Errorf("ParseCalendarUnit(%q) = %v, %v, want %v", tc.input, got, err, tc.expected)
		}
	}

	if _, err := ParseCalendarUnit("fortnight"); !mdwerror.HasCode(err, mdwerror.CodeUnsupportedUnit) {
		t.Errorf("ParseCalendarUnit(fortnight) error = %v, want UNSUPPORTED_UNIT", err)
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestRandomZonedUTC(t *testing.T) {
	from := DateUTC(1950, time.January, 1)
	to := DateUTC(1960, time.December, 31)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 100; i++ {
		got := RandomZonedUTC(rng, from, to)
		if got.Before(from) || got.After(to) {
			t.Fatalf("RandomZonedUTC() = %v, outside [%v, %v]", got, from, to)
		}
		if !IsUTC(got) {
			t.Errorf("RandomZonedUTC() location = %v, want UTC", got.Location())
		}
		if got.Year() < 1950 || got.Year() > 1960 {
			t.Errorf("RandomZonedUTC().Year() = %d, want 1950..1960", got.Year())
		}
		if got.Nanosecond()%int(time.Millisecond) != 0 {
			t.Errorf("RandomZonedUTC() = %v, want millisecond resolution", got)
		}
	}

	if got := RandomZonedUTC(fixedSource(0), from, to); !got.Equal(from) {
		t.Errorf("RandomZonedUTC(0) = %v, want %v", got, from)
	}
	if got := RandomZonedUTC(fixedSource(0.9999999999999), from, to); !got.Equal(to) {
		t.Errorf("RandomZonedUTC(~1) = %v, want %v", got, to)
	}
	if got := RandomZonedUTC(fixedSource(0.5), from, from); !got.Equal(from) {
		t.Errorf("RandomZonedUTC() on a single instant = %v, want %v", got, from)
	}

	got := RandomZonedUTCDefault(from, to)
	if got.Before(from) || got.After(to) {
		t.Errorf("RandomZonedUTCDefault() = %v, outside [%v, %v]", got, from, to)
	}
}
