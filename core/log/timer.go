// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-18 v0.2.0: Injectable clock, completion logged through Entry.Duration

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
	now       func() time.Time
}

// NewTimer creates a new timer for the given operation. Completion is
// logged at debug level.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
		now:       time.Now,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Only the first call logs.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError stops the timer and logs err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	t.fields["success"] = false
	return t.finish(LevelError, t.operation+" failed", err)
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil || !t.logger.IsLevelEnabled(level) {
		return elapsed
	}

	t.fields["operation"] = t.operation
	t.fields["duration"] = elapsed.String()
	t.logger.log(level, message, err, t.fields)

	return elapsed
}
