// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import "fmt"

type config[T Integer] struct {
	rng      *Range[T]
	def      *T
	optional bool
}

// Option configures how a setting is resolved.
type Option[T Integer] func(*config[T])

// InRange bounds the setting to the half-open range [lo, hi).
func InRange[T Integer](lo, hi T) Option[T] {
	return func(c *config[T]) {
		c.rng = &Range[T]{Lo: lo, Hi: hi}
	}
}

// InRangeInclusive bounds the setting to the closed range [lo, hi].
func InRangeInclusive[T Integer](lo, hi T) Option[T] {
	return func(c *config[T]) {
		c.rng = &Range[T]{Lo: lo, Hi: hi, Inclusive: true}
	}
}

// InDeclaredRange bounds the setting to an already constructed [Range].
func InDeclaredRange[T Integer](r Range[T]) Option[T] {
	return func(c *config[T]) {
		c.rng = &r
	}
}

// WithDefault declares the value the setting resolves to when it is
// absent from the environment. The default must satisfy the declared
// range; this is checked at resolution time.
func WithDefault[T Integer](def T) Option[T] {
	return func(c *config[T]) {
		c.def = &def
	}
}

// Optional makes absence resolve to an unset [Value] instead of a
// [MissingError]. A present value is still validated normally and
// fails loudly when malformed or out of range.
func Optional[T Integer]() Option[T] {
	return func(c *config[T]) {
		c.optional = true
	}
}

// Resolve turns the raw text of the setting name into a typed value.
//
// When raw is set, the text is scanned per the package syntax and
// checked against the effective range: the declared range if any,
// otherwise the full domain of T. When raw is unset (or empty), the
// outcome depends on the mode: a default if one was declared, an unset
// Value under [Optional], and a [MissingError] otherwise.
//
// Resolve is a pure function of its arguments; resolving the same
// inputs twice yields identical outcomes.
func Resolve[T Integer](name string, raw Value[string], opts ...Option[T]) (Value[T], error) {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	var unset Value[T]
	if cfg.optional && cfg.def != nil {
		return unset, fmt.Errorf("envparse: %s: WithDefault and Optional are mutually exclusive", name)
	}

	d := DomainOf[T]()
	if cfg.rng != nil {
		if cfg.rng.empty() {
			return unset, fmt.Errorf("envparse: %s: empty range %s", name, cfg.rng)
		}
		if cfg.def != nil && !cfg.rng.Contains(*cfg.def) {
			return unset, RangeError{
				Name:  name,
				Value: fmt.Sprintf(`"%d"`, *cfg.def),
				Bound: cfg.rng.String(),
			}
		}
	}

	text, present := raw.Value()
	var (
		mag     uint64
		neg     bool
		scanErr error
	)
	if present {
		mag, neg, scanErr = scanNumber(text, d.Signed)
		if scanErr == errEmpty {
			// An empty value is indistinguishable from an unset one in
			// most build environments, so treat it as absent.
			present = false
		}
	}
	if !present {
		switch {
		case cfg.optional:
			return unset, nil
		case cfg.def != nil:
			return ValueOf(*cfg.def), nil
		default:
			return unset, MissingError{Name: name}
		}
	}

	switch scanErr {
	case nil:
	case errScanOverflow:
		return unset, OverflowError{Name: name, Raw: text, Type: d.String()}
	default:
		return unset, SyntaxError{Name: name, Raw: text, Reason: scanErr.Error()}
	}

	v, ok := fit[T](d, mag, neg)
	if !ok {
		return unset, OverflowError{Name: name, Raw: text, Type: d.String()}
	}
	if cfg.rng != nil && !cfg.rng.Contains(v) {
		return unset, RangeError{Name: name, Value: fmt.Sprintf("%q", text), Bound: cfg.rng.String()}
	}
	return ValueOf(v), nil
}

// Lookup reads the setting name through lk and resolves it. A nil lk
// reads the process environment.
func Lookup[T Integer](lk LookupFunc, name string, opts ...Option[T]) (Value[T], error) {
	return Resolve(name, lk.Get(name), opts...)
}

// Parse scans s as a T using the package syntax, with no setting name
// and no range attached. Empty input is an error here, not a default:
// Parse is for text that must denote a value, such as manifest bounds.
func Parse[T Integer](s string) (T, error) {
	var zero T
	d := DomainOf[T]()
	mag, neg, err := scanNumber(s, d.Signed)
	switch err {
	case nil:
	case errScanOverflow:
		return zero, OverflowError{Raw: s, Type: d.String()}
	default:
		return zero, SyntaxError{Raw: s, Reason: err.Error()}
	}
	v, ok := fit[T](d, mag, neg)
	if !ok {
		return zero, OverflowError{Raw: s, Type: d.String()}
	}
	return v, nil
}
