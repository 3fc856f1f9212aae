package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli"
	"github.com/bnema/blockrules/internal/cli/styles"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured rule sources and their state",
	Long: `List the rule sources of the config file with the outcome of their last
update, rule counts and when they are due again.`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

var sourcesTrackersCmd = &cobra.Command{
	Use:   "trackers <source>",
	Short: "Show the tracker owners recorded for a tracker list source",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourcesTrackers,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesTrackersCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	repo, err := app.Sources(ctx)
	if err != nil {
		return err
	}
	sources, err := cli.SyncSources(ctx, repo, app.Config)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("\n  No sources configured.\n"))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSourceTable(app.Theme, sources, time.Now()))
	return nil
}

func runSourcesTrackers(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	repo, err := app.Sources(ctx)
	if err != nil {
		return err
	}
	source, err := repo.FindByName(ctx, args[0])
	if err != nil {
		return err
	}
	if source == nil {
		return fmt.Errorf("no source named %q has been updated yet", args[0])
	}

	infos, err := repo.GetTrackerInfos(ctx, source.ID)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("\n  No tracker data recorded for "+source.Name+"\n"))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, info := range infos {
		owner := info.OwnerDisplayName
		if owner == "" {
			owner = info.OwnerName
		}
		fmt.Fprintf(out, "  %s %s %s\n",
			app.Theme.Highlight.Render(info.Domain),
			app.Theme.Normal.Render(owner),
			app.Theme.Subtle.Render(strings.Join(info.Categories, ", ")),
		)
	}
	return nil
}
