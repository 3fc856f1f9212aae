package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli"
	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/domain/entity"
	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
	"github.com/bnema/blockrules/internal/logging"
)

var (
	updateDue   bool
	updatePlain bool
)

var updateCmd = &cobra.Command{
	Use:   "update [source...]",
	Short: "Recompile the configured rule sources",
	Long: `Read, parse and compile the rule sources declared in the config file and
record their state in the state database.

Without arguments every configured source is updated. Use --due to only
update sources whose list asked to be refreshed (the "Expires" header,
clamped between 1 hour and 14 days, plus jitter).

Examples:
  blockrules update                  # Update all sources
  blockrules update easylist         # Update one source
  blockrules update --due            # Update sources that expired (for cron/timers)`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVar(&updateDue, "due", false, "only update sources whose next fetch time has passed")
	updateCmd.Flags().BoolVar(&updatePlain, "plain", false, "print results without the interactive progress view")
}

// updateRun runs the selected updates with ctx.
type updateRun func(ctx context.Context) ([]*infrafiltering.UpdateResult, error)

func runUpdate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := app.Sources(ctx)
	if err != nil {
		return err
	}
	sources, err := cli.SyncSources(ctx, repo, app.Config)
	if err != nil {
		return err
	}
	selected, err := cli.SelectSources(sources, args)
	if err != nil {
		return err
	}

	renderer := styles.NewRulesetRenderer(app.Theme)
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("\n  No sources configured. Add [[sources]] entries to "+app.ConfigMgr.GetConfigFile()+"\n"))
		return nil
	}

	handler, err := app.NewHandler(repo)
	if err != nil {
		return err
	}
	run := func(ctx context.Context) ([]*infrafiltering.UpdateResult, error) {
		if updateDue {
			return handler.UpdateDue(ctx, selected)
		}
		return handler.UpdateAll(ctx, selected)
	}

	if updatePlain {
		results, err := run(ctx)
		fmt.Fprintln(cmd.OutOrStdout(), renderUpdateResults(renderer, selected, results, err))
		return err
	}

	// Log lines would tear the progress view apart.
	if !app.LogsToFile() {
		ctx = logging.WithContext(ctx, logging.FromContext(ctx).Level(zerolog.Disabled))
	}
	return runUpdateProgram(ctx, handler, app.Theme, renderer, selected, run)
}

// renderUpdateResults renders one line per selected source followed by a
// summary. err is the persistence error of the run, if any.
func renderUpdateResults(
	renderer *styles.RulesetRenderer,
	selected []*entity.RuleSource,
	results []*infrafiltering.UpdateResult,
	err error,
) string {
	byID := make(map[entity.RuleSourceID]*infrafiltering.UpdateResult, len(results))
	for _, res := range results {
		if res != nil {
			byID[res.Source.ID] = res
		}
	}

	var sb strings.Builder
	for _, s := range selected {
		if res, ok := byID[s.ID]; ok {
			sb.WriteString(renderer.RenderUpdateResult(res, nil))
		} else {
			sb.WriteString(renderer.RenderSkipped(s.Name))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(renderer.RenderUpdateSummary(results))
	if err != nil {
		sb.WriteString(renderer.RenderUpdateResult(nil, err))
		sb.WriteString("\n")
	}
	return sb.String()
}

// updateModel is the bubbletea model for the update command.
type updateModel struct {
	spinner  spinner.Model
	renderer *styles.RulesetRenderer
	sources  []*entity.RuleSource
	statuses map[entity.RuleSourceID]infrafiltering.SourceStatus
	ctx      context.Context
	cancel   context.CancelFunc
	run      updateRun

	results  []*infrafiltering.UpdateResult
	err      error
	done     bool
	quitting bool
}

// sourceStatusMsg is sent by the handler on every state change of a source.
type sourceStatusMsg infrafiltering.SourceStatus

// updateDoneMsg is sent when all updates have finished.
type updateDoneMsg struct {
	results []*infrafiltering.UpdateResult
	err     error
}

func newUpdateModel(
	ctx context.Context,
	theme *styles.Theme,
	renderer *styles.RulesetRenderer,
	sources []*entity.RuleSource,
	run updateRun,
) updateModel {
	ctx, cancel := context.WithCancel(ctx)
	return updateModel{
		spinner:  styles.NewSpinner(theme, styles.SpinnerUpdate),
		renderer: renderer,
		sources:  sources,
		statuses: make(map[entity.RuleSourceID]infrafiltering.SourceStatus, len(sources)),
		ctx:      ctx,
		cancel:   cancel,
		run:      run,
	}
}

func (m updateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start())
}

func (m updateModel) start() tea.Cmd {
	return func() tea.Msg {
		results, err := m.run(m.ctx)
		return updateDoneMsg{results: results, err: err}
	}
}

func (m updateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sourceStatusMsg:
		m.statuses[msg.SourceID] = infrafiltering.SourceStatus(msg)
		return m, nil

	case updateDoneMsg:
		m.cancel()
		m.done = true
		m.results = msg.results
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m updateModel) View() string {
	if m.quitting {
		return ""
	}
	if m.done {
		return renderUpdateResults(m.renderer, m.sources, m.results, m.err)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, s := range m.sources {
		if status, ok := m.statuses[s.ID]; ok {
			sb.WriteString(m.renderer.RenderStatus(m.spinner.View(), status))
		} else {
			sb.WriteString(m.renderer.RenderPending(s.Name))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// runUpdateProgram runs the updates behind a live progress view.
func runUpdateProgram(
	ctx context.Context,
	handler *infrafiltering.Handler,
	theme *styles.Theme,
	renderer *styles.RulesetRenderer,
	sources []*entity.RuleSource,
	run updateRun,
) error {
	m := newUpdateModel(ctx, theme, renderer, sources, run)
	p := tea.NewProgram(m)
	handler.SetStatusCallback(func(s infrafiltering.SourceStatus) {
		p.Send(sourceStatusMsg(s))
	})
	defer handler.SetStatusCallback(nil)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	if model, ok := finalModel.(updateModel); ok {
		if model.quitting {
			return context.Canceled
		}
		return model.err
	}
	return nil
}
