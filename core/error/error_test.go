// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Wrapped-chain lookups, reduced code set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "date text could not be parsed"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unknown epoch unit %q", "fortnights")
	if err.Error() != `unknown epoch unit "fortnights"` {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNewf") {
		t.Errorf("first frame = %s, want TestNewf", err.StackTrace()[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap corekit error",
			err:     New("no layout matched").WithCode(CodeInvalidFormat),
			message: "wrapper message",
			wantMsg: "wrapper message: no layout matched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	mdwErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if v, _ := mdwErr.Detail("truncated"); v != true {
		t.Errorf("expected truncated detail, got %v", mdwErr.Details())
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	if rootCause := top.RootCause(); rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestWithCode(t *testing.T) {
	err := New("bad zone").WithCode(CodeInvalidTimezone)
	if err.Code() != CodeInvalidTimezone {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeInvalidTimezone)
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}

	explicit := New("bad zone").WithSeverity(SeverityHigh).WithCode(CodeInvalidTimezone)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test").
		WithDetail("text", "2003-02-29").
		WithDetails(map[string]interface{}{"layouts": 42, "zone": "UTC"})

	details := err.Details()
	if details["text"] != "2003-02-29" || details["layouts"] != 42 || details["zone"] != "UTC" {
		t.Errorf("Details() = %v", details)
	}

	// returned map is a copy
	details["text"] = "changed"
	if v, _ := err.Detail("text"); v != "2003-02-29" {
		t.Errorf("Details() exposed internal map")
	}
}

func TestWithOperation(t *testing.T) {
	err := New("test").WithOperation("timex.ParseChecked")
	if err.Operation() != "timex.ParseChecked" {
		t.Errorf("Operation() = %q", err.Operation())
	}
}

func TestHasCode(t *testing.T) {
	base := New("no layout matched").WithCode(CodeInvalidFormat)
	wrappedStd := fmt.Errorf("parse: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", base, CodeInvalidFormat, true},
		{"different code", base, CodeInvalidConfig, false},
		{"wrapped by fmt.Errorf", wrappedStd, CodeInvalidFormat, true},
		{"standard error", errors.New("plain"), CodeInvalidFormat, false},
		{"nil error", nil, CodeInvalidFormat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("x").WithCode(CodeMissingConfig))
	if GetCode(err) != CodeMissingConfig {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityHigh {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of plain error should be medium")
	}
}

func TestString(t *testing.T) {
	err := New("test error").
		WithCode(CodeInvalidFormat).
		WithSeverity(SeverityHigh).
		WithOperation("timex.ParseChecked").
		WithDetail("text", "abc")

	str := err.String()
	for _, part := range []string{
		"Error: test error",
		"Code: INVALID_FORMAT",
		"Severity: high",
		"Operation: timex.ParseChecked",
		"Details: {text=abc}",
	} {
		if !strings.Contains(str, part) {
			t.Errorf("String() should contain %q, got:\n%s", part, str)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "test error").
		WithCode(CodeInvalidFormat).
		WithOperation("timex.ParseChecked").
		WithDetail("text", "abc")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if result["message"] != "test error" {
		t.Errorf("JSON message = %v", result["message"])
	}
	if result["code"] != "INVALID_FORMAT" {
		t.Errorf("JSON code = %v", result["code"])
	}
	if result["operation"] != "timex.ParseChecked" {
		t.Errorf("JSON operation = %v", result["operation"])
	}
	if result["cause"] != "cause" {
		t.Errorf("JSON cause = %v", result["cause"])
	}
	details, ok := result["details"].(map[string]interface{})
	if !ok || details["text"] != "abc" {
		t.Errorf("JSON details = %v", result["details"])
	}
}

func TestStackTrace(t *testing.T) {
	err := New("test error")

	stackTrace := err.StackTrace()
	if len(stackTrace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}

	if !strings.Contains(stackTrace[0].Function, "TestStackTrace") {
		t.Errorf("First stack frame should contain TestStackTrace, got %s", stackTrace[0].Function)
	}

	if stackTrace[0].Line == 0 || stackTrace[0].File == "" {
		t.Errorf("incomplete frame: %+v", stackTrace[0])
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		severity Severity
		exit     int
	}{
		{CodeInvalidFormat, "time", SeverityLow, 1},
		{CodeInvalidDate, "time", SeverityLow, 1},
		{CodeUnsupportedUnit, "time", SeverityLow, 1},
		{CodeInvalidConfig, "configuration", SeverityHigh, 3},
		{CodeMissingConfig, "configuration", SeverityHigh, 3},
		{CodeRequiredField, "validation", SeverityLow, 1},
		{CodeInvalidInput, "generic", SeverityLow, 2},
		{CodeNotFound, "generic", SeverityLow, 2},
		{CodeInternal, "generic", SeverityCritical, 4},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false")
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := GetSeverityFromCode(tt.code); got != tt.severity {
				t.Errorf("GetSeverityFromCode() = %v, want %v", got, tt.severity)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("MADE_UP").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		name     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(99), "unknown", true},
	}

	for _, tt := range tests {
		if tt.severity.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.severity.String(), tt.name)
		}
		if tt.severity.ShouldAlert() != tt.alert {
			t.Errorf("%s.ShouldAlert() = %v", tt.name, tt.severity.ShouldAlert())
		}
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrapStandardError(b *testing.B) {
	stdErr := errors.New("standard error")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Wrap(stdErr, "wrapped error")
	}
}
