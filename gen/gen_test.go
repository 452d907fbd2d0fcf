// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gen

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomcc/envparse"
	"github.com/thomcc/envparse/manifest"
)

func strptr(s string) *string {
	return &s
}

func TestResolve(t *testing.T) {
	t.Run("resolves every setting", func(t *testing.T) {
		man := &manifest.Manifest{
			Package: "mypkg",
			Settings: []manifest.Setting{
				{Const: "MaxThingLen", Env: "MYCRATE_MAX_THING_LEN", Type: "uint32", Default: strptr("64")},
				{Const: "MaxLenLog2", Env: "MYCRATE_MAX_LEN_LOG2", Type: "uint32", Range: &manifest.Range{Lo: "1", Hi: "32"}},
				{Const: "ScratchLen", Env: "OPTIONAL_SCRATCH_LEN", Type: "int", Optional: true},
				{Const: "Bias", Env: "MYCRATE_BIAS", Type: "int8", Range: &manifest.Range{Lo: "-8", Hi: "8", Inclusive: true}},
			},
		}
		env := envparse.MapLookup(map[string]string{
			"MYCRATE_MAX_LEN_LOG2": "0x10",
			"MYCRATE_BIAS":         "-3",
		})

		consts, err := Resolve(man, env)
		require.NoError(t, err)
		require.Equal(t, []Constant{
			{Name: "MaxThingLen", Type: "uint32", Value: "64", Set: true},
			{Name: "MaxLenLog2", Type: "uint32", Value: "16", Set: true},
			{Name: "ScratchLen", Type: "int", Value: "0", Optional: true},
			{Name: "Bias", Type: "int8", Value: "-3", Set: true},
		}, consts)
	})

	t.Run("covers every manifest type", func(t *testing.T) {
		for _, typ := range manifest.Types {
			assert.Contains(t, resolvers, typ)
		}
	})

	t.Run("reports every failure at once", func(t *testing.T) {
		man := &manifest.Manifest{
			Package: "mypkg",
			Settings: []manifest.Setting{
				{Const: "A", Env: "A", Type: "uint8"},
				{Const: "B", Env: "B", Type: "uint8"},
				{Const: "C", Env: "C", Type: "uint8", Default: strptr("1")},
			},
		}
		env := envparse.MapLookup(map[string]string{"B": "300"})

		_, err := Resolve(man, env)
		require.Error(t, err)
		assert.ErrorContains(t, err, "A:")
		assert.ErrorContains(t, err, "B:")
		assert.NotContains(t, err.Error(), "C:")
	})

	t.Run("out of range even when optional", func(t *testing.T) {
		man := &manifest.Manifest{
			Package: "mypkg",
			Settings: []manifest.Setting{
				{Const: "A", Env: "A", Type: "uint32", Range: &manifest.Range{Lo: "1", Hi: "32"}, Optional: true},
			},
		}
		env := envparse.MapLookup(map[string]string{"A": "40"})

		_, err := Resolve(man, env)
		var rerr envparse.RangeError
		require.ErrorAs(t, err, &rerr)
	})

	t.Run("malformed bound", func(t *testing.T) {
		man := &manifest.Manifest{
			Package: "mypkg",
			Settings: []manifest.Setting{
				{Const: "A", Env: "A", Type: "uint32", Range: &manifest.Range{Lo: "one", Hi: "32"}},
			},
		}

		_, err := Resolve(man, envparse.MapLookup(nil))
		require.ErrorContains(t, err, "range bound")
	})

	t.Run("default outside the target width", func(t *testing.T) {
		man := &manifest.Manifest{
			Package: "mypkg",
			Settings: []manifest.Setting{
				{Const: "A", Env: "A", Type: "uint8", Default: strptr("300")},
			},
		}

		_, err := Resolve(man, envparse.MapLookup(nil))
		var oerr envparse.OverflowError
		require.ErrorAs(t, err, &oerr)
	})
}

func TestGenerate(t *testing.T) {
	man := &manifest.Manifest{
		Package: "mypkg",
		Settings: []manifest.Setting{
			{
				Const:   "MaxThingLen",
				Env:     "MYCRATE_MAX_THING_LEN",
				Type:    "uint32",
				Default: strptr("64"),
				Doc:     "is the largest number of things tracked at once.",
			},
			{Const: "ScratchLen", Env: "OPTIONAL_SCRATCH_LEN", Type: "int", Optional: true},
			{Const: "HistoryLen", Env: "MYCRATE_HISTORY_LEN", Type: "uint16", Optional: true},
		},
	}
	env := envparse.MapLookup(map[string]string{
		"MYCRATE_HISTORY_LEN": "256",
	})

	t.Run("renders a parseable file", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, man, env, Source("envparse.yaml"))
		require.NoError(t, err)

		src := buf.String()
		assert.Contains(t, src, "// Code generated by envparse from envparse.yaml; DO NOT EDIT.")
		assert.Contains(t, src, "package mypkg")
		assert.Contains(t, src, "// MaxThingLen is the largest number of things tracked at once.")
		assert.Contains(t, src, "const MaxThingLen uint32 = 64")
		assert.Contains(t, src, "ScratchLenIsSet bool = false")
		assert.Regexp(t, `HistoryLen\s+uint16\s+= 256`, src)
		assert.Regexp(t, `HistoryLenIsSet bool\s+= true`, src)

		fset := token.NewFileSet()
		_, err = parser.ParseFile(fset, "settings_gen.go", src, parser.ParseComments)
		require.NoError(t, err)
	})

	t.Run("package override", func(t *testing.T) {
		var buf bytes.Buffer
		err := Generate(&buf, man, env, Package("other"))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "package other")
	})

	t.Run("writes nothing on failure", func(t *testing.T) {
		failing := &manifest.Manifest{
			Package: "mypkg",
			Settings: []manifest.Setting{
				{Const: "A", Env: "A", Type: "uint8"},
			},
		}

		var buf bytes.Buffer
		err := Generate(&buf, failing, envparse.MapLookup(nil))
		var merr envparse.MissingError
		require.ErrorAs(t, err, &merr)
		require.Zero(t, buf.Len())
	})
}

func TestGenerate_output(t *testing.T) {
	man := &manifest.Manifest{
		Package: "mypkg",
		Settings: []manifest.Setting{
			{Const: "MaxLenLog2", Env: "MYCRATE_MAX_LEN_LOG2", Type: "uint32", Range: &manifest.Range{Lo: "1", Hi: "32"}},
		},
	}
	env := envparse.MapLookup(map[string]string{"MYCRATE_MAX_LEN_LOG2": "5"})

	var buf bytes.Buffer
	err := Generate(&buf, man, env)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"// Code generated by envparse; DO NOT EDIT.",
		"",
		"package mypkg",
		"",
		"const MaxLenLog2 uint32 = 5",
		"",
	}, "\n")
	require.Equal(t, expected, buf.String())
}
