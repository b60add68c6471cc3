// Package error provides the structured error type used across corekit.
//
// Package: error
// Title: corekit Error Handling
// Description: Structured errors with codes, severities, details and stack
//              traces. Every failure returned by the date engine and the
//              configuration layer is an *Error, so callers can branch on
//              codes while errors.Is/errors.As keep working through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced code set to parsing, conversion and configuration
//
// Usage:
//
//	import mdwerror "github.com/msto63/corekit/core/error"
//
//	err := mdwerror.Wrap(cause, "date text could not be parsed").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithOperation("timex.ParseChecked").
//		WithDetail("text", text)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// malformed input, not a programming error
//	}
package error
