package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/filtering/flat"
	"github.com/bnema/blockrules/internal/filtering/ios"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version, build and output format information",
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

// outputFormats names each compile target with its format version.
func outputFormats() []string {
	return []string{
		"flat " + strings.TrimPrefix(strings.TrimSpace(flat.Header), "blockrules-flat-ruleset:"),
		fmt.Sprintf("ios v%d", ios.FormatVersion),
	}
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, outputFormats()))
	return nil
}
