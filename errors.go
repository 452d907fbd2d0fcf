// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import "fmt"

// MissingError occurs when a required setting is not present in the
// environment and no default was declared.
type MissingError struct {
	// Name is the environment variable that was looked up.
	Name string
}

// Error implements the error interface.
func (e MissingError) Error() string {
	return fmt.Sprintf("environment variable %q is not set and has no default", e.Name)
}

// SyntaxError occurs when a setting's value is not valid integer
// syntax for the target type.
type SyntaxError struct {
	// Name is the environment variable the value came from. It may be
	// empty when the text did not originate from a setting, e.g. when
	// parsing a manifest bound.
	Name string

	// Raw is the offending text.
	Raw string

	// Reason describes the first syntax violation encountered.
	Reason string
}

// Error implements the error interface.
func (e SyntaxError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid value %q: %s", e.Raw, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for environment variable %q: %s", e.Raw, e.Name, e.Reason)
}

// OverflowError occurs when a value scans as an integer but exceeds
// the representable width of the target type.
type OverflowError struct {
	// Name is the environment variable the value came from, if any.
	Name string

	// Raw is the offending text.
	Raw string

	// Type is the target type, e.g. "uint8".
	Type string
}

// Error implements the error interface.
func (e OverflowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("value %q overflows %s", e.Raw, e.Type)
	}
	return fmt.Sprintf("value %q for environment variable %q overflows %s", e.Raw, e.Name, e.Type)
}

// RangeError occurs when a value is representable in the target type
// but violates the declared range. It is reported even in Optional
// mode: an explicitly configured value never degrades to "absent".
type RangeError struct {
	// Name is the environment variable the value came from, if any.
	Name string

	// Value is the offending value, as provided or as declared.
	Value string

	// Bound is the violated range in interval notation, e.g. "[1, 32)".
	Bound string
}

// Error implements the error interface.
func (e RangeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("value %s is outside the range %s", e.Value, e.Bound)
	}
	return fmt.Sprintf("value %s for environment variable %q is outside the range %s", e.Value, e.Name, e.Bound)
}
