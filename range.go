// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import "fmt"

// Range bounds the values a setting may take. Lo is always inclusive;
// Hi is exclusive unless Inclusive is set. Because the bounds are
// expressed in the target type itself, a Range is a subset of the
// type's domain by construction.
type Range[T Integer] struct {
	Lo, Hi    T
	Inclusive bool
}

// Contains reports whether v lies within the range.
func (r Range[T]) Contains(v T) bool {
	if v < r.Lo {
		return false
	}
	if r.Inclusive {
		return v <= r.Hi
	}
	return v < r.Hi
}

// empty reports whether no value can satisfy the range, which is an
// authoring error at the call site.
func (r Range[T]) empty() bool {
	if r.Inclusive {
		return r.Hi < r.Lo
	}
	return r.Hi <= r.Lo
}

// String renders the range in interval notation, e.g. "[1, 32)".
func (r Range[T]) String() string {
	if r.Inclusive {
		return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
	}
	return fmt.Sprintf("[%d, %d)", r.Lo, r.Hi)
}
