// Package log provides structured logging for corekit packages and tools.
//
// Package: log
// Title: corekit Structured Logging
// Description: Leveled, structured logger with named child loggers, context
//              fields, correlation IDs and JSON, text, console and logfmt
//              output. Library packages log through named loggers derived
//              from the process-wide default so that applications control
//              level, format and destination in one place.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Dropped async and request/user context, go-json encoder,
//                      lipgloss console styling, guarded default logger
//
// Usage:
//
//	import "github.com/msto63/corekit/core/log"
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatLogfmt).
//		WithName("cli").
//		WithCorrelationID(runID)
//
//	logger.Info("parsed input", log.Field("layout", "iso-offset"))
//	logger.ErrorWithErr("parse failed", err)
//
//	timer := logger.StartTimer("parse")
//	// ... work
//	timer.Stop()
//
// Entries below the logger's level are discarded before any formatting
// happens, so trace calls on hot paths cost a level comparison when disabled.
package log
