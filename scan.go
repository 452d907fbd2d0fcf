// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import (
	"errors"
	"math"
)

// Scanner-level failures. resolve maps these onto the exported error
// types, annotated with the setting name and raw text.
var (
	errEmpty          = errors.New("empty or whitespace-only value")
	errUnexpectedSign = errors.New("minus sign on an unsigned value")
	errNoDigits       = errors.New("no digits")
	errInvalidDigit   = errors.New("invalid digit")
	errScanOverflow   = errors.New("value overflows 64 bits")
)

// scanNumber scans s as an integer magnitude plus sign, accepting the
// syntax documented in the package comment. The magnitude is
// accumulated with overflow checking; width and range checks against
// the target type happen later.
func scanNumber(s string, allowNeg bool) (mag uint64, neg bool, err error) {
	i, end := trimWS(s)
	if i >= end {
		return 0, false, errEmpty
	}
	switch s[i] {
	case '-':
		if !allowNeg {
			return 0, false, errUnexpectedSign
		}
		neg = true
		i++
	case '+':
		i++
	}
	if i == end {
		return 0, false, errNoDigits
	}
	radix := uint64(10)
	if i+2 <= end && s[i] == '0' {
		switch s[i+1] {
		case 'x', 'X':
			radix, i = 16, i+2
		case 'o', 'O':
			radix, i = 8, i+2
		case 'b', 'B':
			radix, i = 2, i+2
		}
	}
	sawDigit := false
	for ; i < end; i++ {
		c := s[i]
		var d uint64
		switch {
		case c == '_':
			continue
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case radix == 16 && c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case radix == 16 && c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, false, errInvalidDigit
		}
		if d >= radix {
			return 0, false, errInvalidDigit
		}
		sawDigit = true
		if mag > (math.MaxUint64-d)/radix {
			return 0, false, errScanOverflow
		}
		mag = mag*radix + d
	}
	if !sawDigit {
		return 0, false, errNoDigits
	}
	return mag, neg, nil
}

// trimWS returns the half-open index range of s with surrounding ASCII
// whitespace excluded.
func trimWS(s string) (int, int) {
	i, end := 0, len(s)
	for i < end && isSpace(s[i]) {
		i++
	}
	for end > i && isSpace(s[end-1]) {
		end--
	}
	return i, end
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
