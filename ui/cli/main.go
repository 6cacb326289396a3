// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the version
// subcommand.

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/mmycin/FFI-Example/buildvars"
	"github.com/mmycin/FFI-Example/internal/config"
	"github.com/mmycin/FFI-Example/internal/i18n"
	"github.com/mmycin/FFI-Example/internal/logging"
	"github.com/mmycin/FFI-Example/internal/report"
)

const modulePath = "github.com/mmycin/FFI-Example"

var version = "dev"   // set by the linker
var gitCommit = "dev" // short commit SHA, set at build time
var buildDate = ""    // RFC3339, set at build time

// app holds the state resolved by the root command's pre-run hook.
type app struct {
	cfgFile string
	verbose bool

	cfg    config.Config
	format report.Format
	color  report.ColorMode
}

// Execute runs the CLI. The caller handles process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Tests call it once per case.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "ffi-example",
		Short: "Evaluate the routines exported by the FFI-Example shared libraries",
		Long: `ffi-example runs the same integer routines that the prime, oddeven and
factorial shared libraries export over the C ABI:
  - isprime    trial-division primality check for uint32 values
  - iseven     parity check for uint32 values
  - factorial  n! for n up to 20`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion += " (" + c + ")"
	}
	if d != "" {
		compositeVersion += " built: " + d
	}
	cmd.Version = compositeVersion

	defaults := config.Defaults()
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: search user, system and current dir)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringP("output", "o", defaults["output"].(string), `Output format ("text", "json", "yaml")`)
	pf.String("language", defaults["language"].(string), `Message language ("en", "de")`)
	pf.String("color", defaults["color"].(string), `Colorize text output ("auto", "always", "never")`)
	pf.String("log.level", defaults["log.level"].(string), `Log level ("debug", "info", "warn", "error")`)

	cmd.AddCommand(
		a.newIsPrimeCmd(),
		a.newIsEvenCmd(),
		a.newFactorialCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads configuration and initialises logging and i18n.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), &a.cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	logging.SetDebug(a.verbose)

	i18n.Init(cfg.Language)

	if a.format, err = report.ParseFormat(cfg.Output); err != nil {
		return err
	}
	if a.color, err = report.ParseColorMode(cfg.Color); err != nil {
		return err
	}
	logging.Debugf("effective config: language=%s output=%s color=%s", i18n.GetLang(), a.format, a.color)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// Skip config loading so version works with a broken config file.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, build info is read from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths leave Main empty; look for our module among deps.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
