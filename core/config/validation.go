// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values, including environment
//              overrides, against declarative rules: required keys, allowed
//              values, value kinds and custom checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: OneOf and zone kinds, corekit INVALID_CONFIG errors

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/corekit/core/error"
	mdwerrors "github.com/msto63/corekit/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool                     // Key must be present
	Kind     string                   // "string", "int", "bool", "duration" or "zone"
	OneOf    []string                 // Allowed values, compared case-insensitively
	Check    func(value string) error // Custom check on the string form
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// Err returns the first validation error, or nil when the configuration is valid
func (r *ValidationResult) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so the first error is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	if !c.Has(key) {
		if rule.Required {
			return mdwerror.New(fmt.Sprintf("required field '%s' is missing", key)).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Validate").
				WithDetail("key", key)
		}
		return nil
	}

	value := c.GetString(key)

	if err := validateKind(value, rule.Kind); err != nil {
		return mdwerrors.ConfigInvalidValue(key, value, rule.Kind).
			WithDetail("reason", err.Error())
	}

	if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, value) {
		return mdwerrors.ConfigInvalidValue(key, value, strings.Join(rule.OneOf, "|"))
	}

	if rule.Check != nil {
		if err := rule.Check(value); err != nil {
			return mdwerrors.ConfigInvalidValue(key, value, "valid value").
				WithDetail("reason", err.Error())
		}
	}

	return nil
}

func validateKind(value, kind string) error {
	var err error
	switch kind {
	case "", "string":
	case "int":
		_, err = strconv.Atoi(value)
	case "bool":
		_, err = strconv.ParseBool(value)
	case "duration":
		_, err = time.ParseDuration(value)
	case "zone":
		_, err = LoadLocation(value)
	default:
		err = fmt.Errorf("unknown validation kind %q", kind)
	}
	return err
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
