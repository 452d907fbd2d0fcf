// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gen resolves every setting of a manifest against a build
// environment and renders the results as a Go source file of constant
// declarations.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"github.com/thomcc/envparse"
	"github.com/thomcc/envparse/manifest"
)

// Constant is the resolved form of one manifest setting.
type Constant struct {
	// Name is the constant's Go identifier.
	Name string

	// Type is the constant's Go type.
	Type string

	// Value is the resolved value as a decimal literal. For an
	// unconfigured optional setting it is "0".
	Value string

	// Set reports whether a value was configured or defaulted. It is
	// false only for unconfigured optional settings.
	Set bool

	// Optional mirrors the manifest: optional constants are emitted
	// together with a <Name>IsSet companion.
	Optional bool

	// Doc is the constant's doc comment, if any.
	Doc string
}

type resolveFunc func(s manifest.Setting, raw envparse.Value[string]) (value string, set bool, err error)

// One entry per manifest.Types value. The generic helper carries the
// typed range/default plumbing; this table is the only place the
// manifest's textual type names meet concrete Go types.
var resolvers = map[string]resolveFunc{
	"int":     resolveAs[int],
	"int8":    resolveAs[int8],
	"int16":   resolveAs[int16],
	"int32":   resolveAs[int32],
	"int64":   resolveAs[int64],
	"uint":    resolveAs[uint],
	"uint8":   resolveAs[uint8],
	"uint16":  resolveAs[uint16],
	"uint32":  resolveAs[uint32],
	"uint64":  resolveAs[uint64],
	"uintptr": resolveAs[uintptr],
}

func resolveAs[T envparse.Integer](s manifest.Setting, raw envparse.Value[string]) (string, bool, error) {
	var opts []envparse.Option[T]
	if s.Range != nil {
		lo, err := envparse.Parse[T](s.Range.Lo)
		if err != nil {
			return "", false, fmt.Errorf("range bound: %w", err)
		}
		hi, err := envparse.Parse[T](s.Range.Hi)
		if err != nil {
			return "", false, fmt.Errorf("range bound: %w", err)
		}
		opts = append(opts, envparse.InDeclaredRange(envparse.Range[T]{
			Lo:        lo,
			Hi:        hi,
			Inclusive: s.Range.Inclusive,
		}))
	}
	if s.Default != nil {
		def, err := envparse.Parse[T](*s.Default)
		if err != nil {
			return "", false, fmt.Errorf("default: %w", err)
		}
		opts = append(opts, envparse.WithDefault(def))
	}
	if s.Optional {
		opts = append(opts, envparse.Optional[T]())
	}

	v, err := envparse.Resolve(s.Env, raw, opts...)
	if err != nil {
		return "", false, err
	}
	val, ok := v.Value()
	if !ok {
		return "0", false, nil
	}
	return fmt.Sprintf("%d", val), true, nil
}

// Resolve resolves every setting of the manifest through lookup. All
// settings are attempted so a single run reports every failure, joined
// into one error. On any failure no constants are returned.
func Resolve(man *manifest.Manifest, lookup envparse.LookupFunc) ([]Constant, error) {
	consts := make([]Constant, 0, len(man.Settings))
	var errs []error
	for _, s := range man.Settings {
		resolve, ok := resolvers[s.Type]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unknown type %q", s.Const, s.Type))
			continue
		}
		value, set, err := resolve(s, lookup.Get(s.Env))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Const, err))
			continue
		}
		consts = append(consts, Constant{
			Name:     s.Const,
			Type:     s.Type,
			Value:    value,
			Set:      set,
			Optional: s.Optional,
			Doc:      s.Doc,
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return consts, nil
}

// GenerateOption represents options for configuring the generated file.
type GenerateOption func(*generator)

// Source records where the constants came from, e.g. the manifest
// path, in the "Code generated by" header line.
func Source(name string) GenerateOption {
	return func(g *generator) {
		g.source = name
	}
}

// Package overrides the package name declared by the manifest.
func Package(name string) GenerateOption {
	return func(g *generator) {
		g.pkg = name
	}
}

type generator struct {
	source string
	pkg    string
}

var fileTmpl = template.Must(template.New("envparse").Parse(`// Code generated by envparse{{with .Source}} from {{.}}{{end}}; DO NOT EDIT.

package {{.Package}}
{{range .Constants}}
{{- if .Optional}}
{{if .Doc}}// {{.Name}} {{.Doc}}
{{end -}}
// {{.Name}}IsSet reports whether {{.Name}} was configured at build time.
const (
	{{.Name}} {{.Type}} = {{.Value}}
	{{.Name}}IsSet bool = {{.Set}}
)
{{- else}}
{{if .Doc}}// {{.Name}} {{.Doc}}
{{end -}}
const {{.Name}} {{.Type}} = {{.Value}}
{{- end}}
{{end}}`))

// RenderError occurs when the resolved constants fail to render into
// a well formed Go source file.
type RenderError struct {
	Cause error
}

// Error implements the error interface.
func (e RenderError) Error() string {
	return fmt.Sprintf("failed to render generated file: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e RenderError) Unwrap() error {
	return e.Cause
}

// Generate resolves the manifest through lookup and writes a gofmt-ed
// Go source file to w. Nothing is written unless every setting
// resolves, so a failed build never leaves a partial file behind.
func Generate(w io.Writer, man *manifest.Manifest, lookup envparse.LookupFunc, opts ...GenerateOption) error {
	g := generator{pkg: man.Package}
	for _, opt := range opts {
		opt(&g)
	}

	consts, err := Resolve(man, lookup)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = fileTmpl.Execute(&buf, struct {
		Source    string
		Package   string
		Constants []Constant
	}{
		Source:    g.source,
		Package:   g.pkg,
		Constants: consts,
	})
	if err != nil {
		return RenderError{Cause: err}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return RenderError{Cause: err}
	}
	_, err = w.Write(src)
	return err
}
