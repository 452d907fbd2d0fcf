// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envparse

import "os"

// LookupFunc reads a single named setting from a build environment.
// It never fails: an undefined name is reported through ok, not an
// error.
type LookupFunc func(name string) (value string, ok bool)

// Environ returns a LookupFunc reading the environment variables of
// the current process.
func Environ() LookupFunc {
	return os.LookupEnv
}

// MapLookup returns a LookupFunc backed by m, which is useful for
// tests and for resolving against a captured environment.
func MapLookup(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// Get performs the lookup and wraps the result in a [Value]. A nil
// LookupFunc reads the process environment.
func (f LookupFunc) Get(name string) Value[string] {
	if f == nil {
		f = os.LookupEnv
	}
	v, ok := f(name)
	if !ok {
		return Value[string]{}
	}
	return ValueOf(v)
}
