// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Error builder and the standard constructors shared by the
//              corekit packages, plus helpers to read module context back
//              out of an error chain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-18 v0.2.0: Typed codes, module helpers for timex and config

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/corekit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTimex   = "timex"
	ModuleConfig  = "config"
	ModuleStringx = "stringx"
	ModuleCLI     = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error. Without an explicit code the builder uses
// the cause's code when the cause is a corekit error, INTERNAL otherwise.
// An unset severity follows the code.
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.GetCode(eb.cause)
		if eb.code == mdwerror.CodeUnknown {
			eb.code = mdwerror.CodeInternal
		}
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	severity := eb.severity
	if severity == mdwerror.SeverityMedium {
		severity = mdwerror.GetSeverityFromCode(eb.code)
	}

	err = err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s", module).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed wraps cause as a failed module operation
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value out of range in %s.%s", module, operation).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// TimexParseError reports text that no date layout accepted
func TimexParseError(operation, text string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Messagef("unparseable date %q", text).
		Cause(cause).
		Code(mdwerror.CodeInvalidFormat).
		Detail("text", text).
		Build()
}

// TimexInvalidTimezone reports a zone name the tz database does not know
func TimexInvalidTimezone(timezone string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation("LoadLocation").
		Messagef("unknown time zone %q", timezone).
		Cause(cause).
		Code(mdwerror.CodeInvalidTimezone).
		Detail("zone", timezone).
		Build()
}

// TimexUnspecifiedUnit reports a conversion requested without a unit
func TimexUnspecifiedUnit(operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Message("unit must be specified").
		Cause(cause).
		Code(mdwerror.CodeInvalidInput).
		Build()
}

// ConfigInvalidValue reports a configuration value that cannot be used
func ConfigInvalidValue(key string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid value for %s", key).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// ExtractDetails extracts all details from the outermost corekit error in err
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := mdwerror.As(err); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
