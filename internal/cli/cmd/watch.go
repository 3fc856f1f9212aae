package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli"
	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/infrastructure/config"
	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
	"github.com/bnema/blockrules/internal/logging"
)

var watchNoInitial bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompile rule sources whenever their files change",
	Long: `Update every configured source once, then watch their files and recompile
a source as soon as its file is written. Sources whose list expired are
refreshed on schedule as well.

Changes to the config file are picked up: new sources are watched and
compiled right away. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchNoInitial, "no-initial", false, "skip the initial update of all sources")
}

// dueCheckInterval is how often watch looks for expired sources.
const dueCheckInterval = 5 * time.Minute

func runWatch(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	repo, err := app.Sources(ctx)
	if err != nil {
		return err
	}
	handler, err := app.NewHandler(repo)
	if err != nil {
		return err
	}
	debounce := time.Duration(app.Config.Filtering.WatchDebounceMs) * time.Millisecond
	watcher, err := infrafiltering.NewWatcher(handler, debounce)
	if err != nil {
		return err
	}
	defer watcher.Close()

	renderer := styles.NewRulesetRenderer(app.Theme)
	out := cmd.OutOrStdout()
	watcher.OnUpdate(func(res *infrafiltering.UpdateResult, err error) {
		fmt.Fprintln(out, renderer.RenderUpdateResult(res, err))
	})

	sources, err := cli.SyncSources(ctx, repo, app.Config)
	if err != nil {
		return err
	}
	if err := watcher.Replace(sources); err != nil {
		return err
	}

	if !watchNoInitial && len(sources) > 0 {
		results, err := handler.UpdateAll(ctx, sources)
		fmt.Fprint(out, renderUpdateResults(renderer, sources, results, err))
	}

	reloads := make(chan *config.Config, 1)
	app.ConfigMgr.OnConfigChange(func(cfg *config.Config) {
		select {
		case reloads <- cfg:
		default:
		}
	})
	if err := app.ConfigMgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config file is not watched")
	}

	watchErr := make(chan error, 1)
	go func() { watchErr <- watcher.Run(ctx) }()

	configRenderer := styles.NewConfigRenderer(app.Theme)
	ticker := time.NewTicker(dueCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-watchErr:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case cfg := <-reloads:
			fmt.Fprint(out, configRenderer.RenderReloaded(len(cfg.Sources)))
			synced, err := cli.SyncSources(ctx, repo, cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to apply reloaded config")
				continue
			}
			if err := watcher.Replace(synced); err != nil {
				log.Error().Err(err).Msg("failed to watch reloaded sources")
			}
			sources = synced
			// New and changed sources are due.
			printDue(ctx, out, renderer, handler, sources)
		case <-ticker.C:
			printDue(ctx, out, renderer, handler, sources)
		}
	}
}

// printDue updates the due sources and prints one line per update.
func printDue(
	ctx context.Context,
	out io.Writer,
	renderer *styles.RulesetRenderer,
	handler *infrafiltering.Handler,
	sources []*entity.RuleSource,
) {
	results, err := handler.UpdateDue(ctx, sources)
	for _, res := range results {
		if res != nil {
			fmt.Fprintln(out, renderer.RenderUpdateResult(res, nil))
		}
	}
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("scheduled update failed")
	}
}
