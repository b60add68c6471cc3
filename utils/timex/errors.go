// File: errors.go
// Title: Date Parsing Errors
// Description: Sentinel errors and the ParseError type returned when no
//              layout accepts a text or the matched fields do not form a
//              valid date.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"errors"
	"fmt"
)

var (
	// ErrDateParse matches every *ParseError through errors.Is
	ErrDateParse = errors.New("timex: unparseable date")

	// ErrUnspecifiedUnit is returned when a conversion needs a unit and got none
	ErrUnspecifiedUnit = errors.New("timex: unit must be specified")
)

// Reasons reported by ParseError
const (
	ReasonNoMatch     = "no layout matched"
	ReasonInvalidDate = "invalid calendar date"
	ReasonInvalidTime = "invalid time of day"
	ReasonUnknownZone = "unknown time zone"
	ReasonWeekday     = "weekday does not match date"
)

// ParseError describes why a text could not be turned into a time
type ParseError struct {
	Text   string
	Layout string // empty when no layout matched
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("cannot parse %q: %s", e.Text, e.Reason)
	}
	return fmt.Sprintf("cannot parse %q as %s: %s", e.Text, e.Layout, e.Reason)
}

// Is reports whether target is ErrDateParse
func (e *ParseError) Is(target error) bool {
	return target == ErrDateParse
}
