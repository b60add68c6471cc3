// File: level.go
// Title: Log Level Definitions
// Description: Log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Level table with lipgloss colors replaces the
//   per-method switches

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level. The date parser reports
	// rejected input here.
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit entries are written regardless of the minimum level
	LevelAudit
)

// levelNames holds the long name, the short tag and the console color of
// each level, indexed by Level
var levelNames = [...]struct {
	name  string
	short string
	color lipgloss.Color
}{
	LevelTrace: {"trace", "TRC", "7"},
	LevelDebug: {"debug", "DBG", "6"},
	LevelInfo:  {"info", "INF", "2"},
	LevelWarn:  {"warn", "WRN", "3"},
	LevelError: {"error", "ERR", "1"},
	LevelFatal: {"fatal", "FTL", "5"},
	LevelAudit: {"audit", "AUD", "4"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case level name used in config files
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three-letter tag used by the text formatters
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color returns the terminal color used for the level in console output
func (l Level) Color() lipgloss.Color {
	if !l.valid() {
		return lipgloss.Color("")
	}
	return levelNames[l].color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel accepts the long name, the short tag or the aliases
// "information" and "warning", case-insensitively
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "information":
		return LevelInfo, nil
	case "warning":
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if name == n.name || strings.EqualFold(name, n.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all levels from most to least verbose
func AllLevels() []Level {
	levels := make([]Level, len(levelNames))
	for i := range levels {
		levels[i] = Level(i)
	}
	return levels
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
