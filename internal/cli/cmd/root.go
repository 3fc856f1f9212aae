// Package cmd provides Cobra CLI commands for blockrules.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli"
	"github.com/bnema/blockrules/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "blockrules",
		Short: "Compile ad-block filter lists into content-blocking rulesets",
		Long: `blockrules - parse EasyList-style filter lists, hosts files and DuckDuckGo
tracker lists, and compile them into rulesets for content-blocking engines.

Two output formats are supported:
  - flat: a compact flatbuffers ruleset for a native matching engine
  - ios:  a declarative content-blocker JSON ruleset

Sources are declared in the config file. 'blockrules update' recompiles
them and records their state, 'blockrules watch' recompiles local sources
whenever they change on disk.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/blockrules/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
