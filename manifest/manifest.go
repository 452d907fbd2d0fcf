// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package manifest loads and validates the YAML description of the
// constants the envparse command generates.
//
// A manifest looks like:
//
//	package: mypkg
//	settings:
//	  - const: MaxThingLen
//	    env: MYCRATE_MAX_THING_LEN
//	    type: uint32
//	    default: 64
//	  - const: MaxLenLog2
//	    env: MYCRATE_MAX_LEN_LOG2
//	    type: uint32
//	    range: "[1, 32)"
//	  - const: ScratchLen
//	    env: OPTIONAL_SCRATCH_LEN
//	    type: int
//	    optional: true
//
// Ranges are written in interval notation, "[lo, hi)" or "[lo, hi]",
// or in shorthand as "lo..hi" (exclusive) or "lo..=hi" (inclusive).
package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Manifest declares the target package and the settings to resolve.
type Manifest struct {
	// Package is the package name the generated file declares.
	Package string `manifest:"package"`

	// Settings are resolved in order, each producing one constant
	// declaration.
	Settings []Setting `manifest:"settings"`
}

// Setting declares one generated constant.
type Setting struct {
	// Const is the Go identifier the constant is declared as.
	Const string `manifest:"const"`

	// Env is the environment variable the value is read from.
	Env string `manifest:"env"`

	// Type is the Go integer type of the constant, e.g. "uint32".
	Type string `manifest:"type"`

	// Range optionally bounds the value.
	Range *Range `manifest:"range"`

	// Default is the value used when Env is unset. It is kept textual
	// and parsed with the same syntax as the setting itself.
	Default *string `manifest:"default"`

	// Optional settings tolerate absence; a companion <Const>IsSet
	// constant records whether the value was configured.
	Optional bool `manifest:"optional"`

	// Doc is an optional doc comment for the constant.
	Doc string `manifest:"doc"`
}

// Range is a textual range declaration. The bounds stay strings until
// the generator parses them in the setting's target type.
type Range struct {
	Lo, Hi    string
	Inclusive bool
}

// String renders the range in interval notation.
func (r Range) String() string {
	if r.Inclusive {
		return fmt.Sprintf("[%s, %s]", r.Lo, r.Hi)
	}
	return fmt.Sprintf("[%s, %s)", r.Lo, r.Hi)
}

// Types lists the supported values of [Setting.Type].
var Types = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
}

// KnownType reports whether name is a supported setting type.
func KnownType(name string) bool {
	for _, t := range Types {
		if t == name {
			return true
		}
	}
	return false
}

// Load reads and decodes the manifest file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// InvalidYamlError occurs if the manifest is not valid YAML.
type InvalidYamlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// Decode parses a manifest from r and validates it.
func Decode(r io.Reader) (*Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return nil, InvalidYamlError{cause: err}
	}

	var man Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "manifest",
		ErrorUnused: true,
		Result:      &man,
		DecodeHook: composeDecodeHooks(
			rangeHookFunc(),
			scalarToStringHookFunc(),
		),
	})
	if err != nil {
		return nil, err
	}
	err = dec.Decode(m)
	if err != nil {
		return nil, err
	}

	err = man.Validate()
	if err != nil {
		return nil, err
	}
	return &man, nil
}

// Validate checks the structural rules a manifest must satisfy before
// any environment lookup happens: a package name, at least one
// setting, valid identifiers, known types, no duplicate constants and
// no setting that is both optional and defaulted. Typed checks on
// bounds and defaults belong to the generator.
func (m *Manifest) Validate() error {
	var errs []error
	if m.Package == "" || !token.IsIdentifier(m.Package) {
		errs = append(errs, fmt.Errorf("package %q is not a valid package name", m.Package))
	}
	if len(m.Settings) == 0 {
		errs = append(errs, errors.New("manifest declares no settings"))
	}

	seen := make(map[string]struct{}, len(m.Settings))
	for i, s := range m.Settings {
		at := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf("setting %d (%s): %s", i, s.Const, fmt.Sprintf(format, args...)))
		}
		if !token.IsIdentifier(s.Const) {
			at("%q is not a valid Go identifier", s.Const)
		}
		if _, dup := seen[s.Const]; dup {
			at("duplicate constant name")
		}
		seen[s.Const] = struct{}{}
		if s.Env == "" {
			at("missing env")
		}
		if !KnownType(s.Type) {
			at("unknown type %q", s.Type)
		}
		if s.Optional && s.Default != nil {
			at("optional and default are mutually exclusive")
		}
	}
	return errors.Join(errs...)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, err
		}
		return f.Interface(), nil
	}
}

// rangeHookFunc decodes a range string like "[1, 32)" or "1..=31"
// into a Range.
func rangeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(Range{}) {
			return nil, errInvalidDecodeCondition
		}
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		return ParseRange(data.(string))
	}
}

// scalarToStringHookFunc renders YAML numeric scalars as strings, so
// that `default: 64` and `default: "64"` decode identically.
func scalarToStringHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int64:
			return strconv.FormatInt(reflect.ValueOf(data).Int(), 10), nil
		case reflect.Uint, reflect.Uint64:
			return strconv.FormatUint(reflect.ValueOf(data).Uint(), 10), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

// InvalidRangeError occurs if a range declaration cannot be parsed.
type InvalidRangeError struct {
	// Raw is the offending declaration.
	Raw string
}

// Error implements the error interface.
func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %q: want \"[lo, hi)\", \"[lo, hi]\", \"lo..hi\" or \"lo..=hi\"", e.Raw)
}

// ParseRange parses a textual range declaration. Interval notation
// uses "[lo, hi)" for a half-open and "[lo, hi]" for a closed range;
// the shorthand forms are "lo..hi" and "lo..=hi".
func ParseRange(s string) (Range, error) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "[") {
		inclusive := strings.HasSuffix(trimmed, "]")
		if !inclusive && !strings.HasSuffix(trimmed, ")") {
			return Range{}, InvalidRangeError{Raw: s}
		}
		lo, hi, ok := strings.Cut(trimmed[1:len(trimmed)-1], ",")
		lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
		if !ok || lo == "" || hi == "" {
			return Range{}, InvalidRangeError{Raw: s}
		}
		return Range{Lo: lo, Hi: hi, Inclusive: inclusive}, nil
	}

	lo, hi, ok := strings.Cut(trimmed, "..")
	if !ok {
		return Range{}, InvalidRangeError{Raw: s}
	}
	inclusive := strings.HasPrefix(hi, "=")
	hi = strings.TrimPrefix(hi, "=")
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if lo == "" || hi == "" {
		return Range{}, InvalidRangeError{Raw: s}
	}
	return Range{Lo: lo, Hi: hi, Inclusive: inclusive}, nil
}
