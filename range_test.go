// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange_Contains(t *testing.T) {
	testCases := []struct {
		name     string
		rng      Range[int32]
		v        int32
		expected bool
	}{
		{name: "below low", rng: Range[int32]{Lo: 1, Hi: 32}, v: 0},
		{name: "at low", rng: Range[int32]{Lo: 1, Hi: 32}, v: 1, expected: true},
		{name: "inside", rng: Range[int32]{Lo: 1, Hi: 32}, v: 31, expected: true},
		{name: "at exclusive high", rng: Range[int32]{Lo: 1, Hi: 32}, v: 32},
		{name: "at inclusive high", rng: Range[int32]{Lo: 1, Hi: 32, Inclusive: true}, v: 32, expected: true},
		{name: "above inclusive high", rng: Range[int32]{Lo: 1, Hi: 32, Inclusive: true}, v: 33},
		{name: "negative bounds", rng: Range[int32]{Lo: -8, Hi: -1, Inclusive: true}, v: -4, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.rng.Contains(tc.v))
		})
	}
}

func TestRange_String(t *testing.T) {
	require.Equal(t, "[1, 32)", Range[uint32]{Lo: 1, Hi: 32}.String())
	require.Equal(t, "[0, 255]", Range[uint8]{Lo: 0, Hi: 255, Inclusive: true}.String())
	require.Equal(t, "[-8, 8)", Range[int8]{Lo: -8, Hi: 8}.String())
}

func TestRange_empty(t *testing.T) {
	require.True(t, Range[uint8]{Lo: 5, Hi: 5}.empty())
	require.False(t, Range[uint8]{Lo: 5, Hi: 5, Inclusive: true}.empty())
	require.True(t, Range[uint8]{Lo: 6, Hi: 5, Inclusive: true}.empty())
	require.False(t, Range[uint8]{Lo: 5, Hi: 6}.empty())
}
