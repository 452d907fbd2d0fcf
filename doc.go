// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envparse resolves named build-time environment settings into
// validated, strongly typed integer values.
//
// It exists for the kind of knob that must be fixed before a program is
// built: buffer sizes, shift amounts, feature thresholds. Such settings are
// conventionally passed through the environment of the build
// (FOOBAR_SIZE=32), and the value either becomes a constant in the generated
// artifact or the build stops with a descriptive error. A value outside its
// declared range is never produced, not even via a default.
//
// # Resolving a setting
//
// [Resolve] is the core operation. It takes the setting name, the raw text
// (or its absence) as a [Value], and options declaring the bound, default and
// mode:
//
//	v, err := envparse.Resolve("MYCRATE_MAX_LEN_LOG2",
//		envparse.Environ().Get("MYCRATE_MAX_LEN_LOG2"),
//		envparse.InRange[uint32](1, 32),
//		envparse.WithDefault[uint32](6),
//	)
//
// [Lookup] combines the environment read and Resolve into one call. Without
// [WithDefault] a setting is required and its absence is a [MissingError].
// With [Optional] absence yields an unset [Value]. Malformed or out-of-range
// text is always an error, in every mode: a setting the user explicitly
// provided is never silently coerced to "absent".
//
// # Accepted syntax
//
// Integer values may be surrounded by ASCII whitespace, carry an optional
// leading + or - (minus only for signed types), an optional case-insensitive
// 0x, 0o or 0b radix prefix, and use _ as a digit separator:
//
//	integer: ('+' | '-')? (dec_int | oct_int | bin_int | hex_int)
//
//	dec_int: (digit_dec | '_')* digit_dec (digit_dec | '_')*
//	hex_int: '0x' (digit_hex | '_')* digit_hex (digit_hex | '_')*
//	oct_int: '0o' (digit_oct | '_')* digit_oct (digit_oct | '_')*
//	bin_int: '0b' (digit_bin | '_')* digit_bin (digit_bin | '_')*
//
// An empty or whitespace-only value is treated as if the setting were unset.
//
// # Generating constants
//
// The envparse command under cmd/envparse turns a YAML manifest of settings
// into a Go source file of constant declarations, for use from a go:generate
// directive. See the manifest and gen packages.
package envparse
