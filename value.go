// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

// Value represents a possibly absent value, such as an environment
// variable which may not be set or an [Optional] setting which was
// not configured. The zero Value is unset.
type Value[T any] struct {
	val T
	set bool
}

// ValueOf returns a set Value holding v.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

// Value returns the underlying value and whether it is set.
func (v Value[T]) Value() (T, bool) {
	return v.val, v.set
}
