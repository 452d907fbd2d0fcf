// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import (
	"fmt"
	"math"
	"reflect"
)

// Integer is the set of types a setting can resolve to.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Domain describes the representable range of a target integer type:
// its signedness and bit width.
type Domain struct {
	Signed bool
	Bits   int

	name string
}

// DomainOf returns the Domain of T. Platform-width types (int, uint,
// uintptr) report their actual width on the current platform.
func DomainOf[T Integer]() Domain {
	t := reflect.TypeOf((*T)(nil)).Elem()
	k := t.Kind()
	return Domain{
		Signed: k >= reflect.Int && k <= reflect.Int64,
		Bits:   t.Bits(),
		name:   t.String(),
	}
}

// String returns the name of the type the domain was derived from,
// e.g. "uint8".
func (d Domain) String() string {
	if d.name != "" {
		return d.name
	}
	if d.Signed {
		return fmt.Sprintf("int%d", d.Bits)
	}
	return fmt.Sprintf("uint%d", d.Bits)
}

// maxMagnitude returns the largest representable positive value.
func (d Domain) maxMagnitude() uint64 {
	if !d.Signed {
		if d.Bits == 64 {
			return math.MaxUint64
		}
		return 1<<d.Bits - 1
	}
	return 1<<(d.Bits-1) - 1
}

// minMagnitude returns the magnitude of the smallest representable
// value, i.e. 128 for int8. Zero for unsigned domains.
func (d Domain) minMagnitude() uint64 {
	if !d.Signed {
		return 0
	}
	return 1 << (d.Bits - 1)
}

// fit converts a scanned (magnitude, sign) pair into T, reporting
// whether the value is representable.
func fit[T Integer](d Domain, mag uint64, neg bool) (T, bool) {
	var zero T
	if neg {
		if mag > d.minMagnitude() {
			return zero, false
		}
		// The 64-bit min magnitude (1<<63) negates to MinInt64 under
		// two's complement, so this holds for every signed width.
		return T(-int64(mag)), true
	}
	if mag > d.maxMagnitude() {
		return zero, false
	}
	return T(mag), true
}
