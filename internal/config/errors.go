// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a malformed descriptor or a reference to
// something that does not exist. Field is a dotted path to the offending
// declaration, e.g. `targets.DBDebugToolkit.header_search_paths[3]`.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error in %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConfiguration) true for any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Errorf builds a ConfigurationError for field with a formatted reason.
func Errorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Wrap builds a ConfigurationError for field that keeps err as its cause.
func Wrap(field, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason, Err: err}
}

// TargetField renders the field path of a target attribute.
func TargetField(target, attr string) string {
	if attr == "" {
		return "targets." + target
	}
	return "targets." + target + "." + attr
}

// ProductField renders the field path of a product attribute.
func ProductField(product, attr string) string {
	if attr == "" {
		return "products." + product
	}
	return "products." + product + "." + attr
}

// Indexed appends a list index to a field path.
func Indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
