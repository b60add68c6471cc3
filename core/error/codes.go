// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by corekit packages and maps
//              them to categories.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with platform error codes
// - 2026-10-18 v0.2.0: Codes for date parsing, epoch units and timezones

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing and conversion
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeInvalidTimezone Code = "INVALID_TIMEZONE"
	CodeUnsupportedUnit Code = "UNSUPPORTED_UNIT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidFormat, CodeInvalidDate, CodeInvalidTimezone, CodeUnsupportedUnit, CodeValueOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidFormat, CodeInvalidDate, CodeInvalidTimezone, CodeUnsupportedUnit, CodeValueOutOfRange:
		return "time"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command line tool should use
// when it terminates because of an error with this code.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "time", "validation":
		return 1
	case "configuration":
		return 3
	}
	if c == CodeInvalidInput || c == CodeNotFound {
		return 2
	}
	return 4
}
