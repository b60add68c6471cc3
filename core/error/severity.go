// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors and the default severity derived
//              from an error code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-18 v0.2.0: Severity mapping for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks bad input that the caller can correct,
	// e.g. an unparseable date string
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh marks configuration and environment problems
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeInvalidDate,
		CodeInvalidTimezone, CodeUnsupportedUnit, CodeValueOutOfRange,
		CodeValidationFailed, CodeRequiredField:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
