// Package errors provides the standard error constructors used across corekit
// packages.
//
// Package: errors
// Title: Standard Error Constructors for corekit
// Description: Builds module-scoped errors on top of the core error package so
//              that every package reports failures with the same details
//              structure (module, operation, input) and the same codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-18 v0.2.0: Reduced to the timex and config modules, codes taken from core/error
//
// Package Overview:
//
// Errors created here are ordinary *mdwerror.Error values. The builder adds the
// module name and operation to the details and derives a code when none is set:
//
//	err := errors.NewErrorBuilder(errors.ModuleTimex).
//		Operation("ParseChecked").
//		Message("unparseable date").
//		Detail("text", text).
//		Build()
//
// Module helpers cover the recurring cases:
//
//	errors.TimexParseError("ParseChecked", text, cause)   // INVALID_FORMAT
//	errors.TimexInvalidTimezone("Europe/Nowhere", cause)  // INVALID_TIMEZONE
//	errors.TimexUnspecifiedUnit("FromEpochUnit", cause)   // INVALID_INPUT
//	errors.ConfigInvalidValue("parser.pivot", v, "construction|per-call")
//
// Callers inspect them with the analysis helpers:
//
//	if errors.ExtractModule(err) == errors.ModuleConfig {
//		...
//	}
package errors
