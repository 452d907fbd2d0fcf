// Copyright (c) 2026 The envparse Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// The envparse command resolves the settings declared in a YAML
// manifest against the current environment and generates a Go source
// file of constants. It is meant to be run from a go:generate
// directive:
//
//	//go:generate go run github.com/thomcc/envparse/cmd/envparse generate -m envparse.yaml -o settings_gen.go
//
// A missing required setting, malformed value or out-of-range value
// makes the command exit non-zero, which fails the surrounding build.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thomcc/envparse"
	"github.com/thomcc/envparse/gen"
	"github.com/thomcc/envparse/manifest"
)

var rootCmd = &cobra.Command{
	Use:           "envparse",
	Short:         "Generate Go constants from build-time environment settings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	manifestPath string
	outPath      string
	pkgOverride  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Resolve the manifest and write the generated Go file",
	RunE: func(cmd *cobra.Command, args []string) error {
		man, err := manifest.Load(manifestPath)
		if err != nil {
			return fmt.Errorf("%s: %w", manifestPath, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return err
		}

		err = gen.Generate(f, man, envparse.Environ(),
			gen.Source(manifestPath),
			gen.Package(pkg(man)),
		)
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			// Never leave a partial or stale artifact behind a failed build.
			os.Remove(outPath)
			return err
		}

		logger(cmd).Info("generated constants",
			slog.String("manifest", manifestPath),
			slog.String("out", outPath),
			slog.Int("settings", len(man.Settings)),
		)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve the manifest and report each setting without writing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		man, err := manifest.Load(manifestPath)
		if err != nil {
			return fmt.Errorf("%s: %w", manifestPath, err)
		}

		consts, err := gen.Resolve(man, envparse.Environ())
		if err != nil {
			return err
		}

		log := logger(cmd)
		for _, c := range consts {
			if !c.Set {
				log.Info("setting not configured",
					slog.String("const", c.Name),
					slog.String("type", c.Type),
				)
				continue
			}
			log.Info("setting resolved",
				slog.String("const", c.Name),
				slog.String("type", c.Type),
				slog.String("value", c.Value),
			)
		}
		return nil
	},
}

func pkg(man *manifest.Manifest) string {
	if pkgOverride != "" {
		return pkgOverride
	}
	return man.Package
}

func logger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, checkCmd} {
		cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "envparse.yaml", "Path to the settings manifest")
	}
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "settings_gen.go", "Path of the generated Go file")
	generateCmd.Flags().StringVarP(&pkgOverride, "package", "p", "", "Override the package name declared by the manifest")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "envparse: %s\n", err)
		os.Exit(1)
	}
}
