package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/infrastructure/config"
)

var (
	configYes          bool
	configSchemaOutput string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration status, migrate to add new default settings and export the JSON schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path, the resolved paths and sources, and check if any new settings are available.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults and adds any missing settings.

Existing settings are never modified - only missing keys are added with default values.`,
	Args: cobra.NoArgs,
	RunE: runConfigMigrate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml, for editor completion and
validation. Use --output to write it to a file instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)
	configFile := app.ConfigMgr.GetConfigFile()

	missing, err := config.NewMigrator().MissingKeys(configFile)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	if len(missing) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		fmt.Fprint(out, renderer.RenderSummary(app.Config))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(missing)))
	fmt.Fprint(out, renderer.RenderSummary(app.Config))
	fmt.Fprintln(out, renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)
	migrator := config.NewMigrator()
	configFile := app.ConfigMgr.GetConfigFile()

	missing, err := migrator.MissingKeys(configFile)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if len(missing) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(missing)))
	fmt.Fprintln(out, renderer.RenderMissingKeys(migrator.DescribeKeys(missing)))

	if configYes {
		added, err := migrator.Migrate(configFile)
		if err != nil {
			fmt.Fprintln(out, renderer.RenderError(err))
			return nil
		}
		fmt.Fprintln(out, renderer.RenderMigrationSuccess(len(added), configFile))
		return nil
	}

	return runMigrateWithConfirmation(renderer, app.Theme, migrator, configFile)
}

// runConfigSchema prints or writes the config JSON schema.
func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaOutput != "" {
		if err := config.WriteSchemaFile(configSchemaOutput); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(configSchemaOutput))
		return nil
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
	return err
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	spinner    spinner.Model
	renderer   *styles.ConfigRenderer
	confirm    styles.ConfirmModel
	state      migrateState
	migrate    func() ([]string, error)
	configFile string

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	added []string
	err   error
}

func newMigrateModel(
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	configFile string,
	migrate func() ([]string, error),
) migrateModel {
	return migrateModel{
		spinner:    styles.NewSpinner(theme, styles.SpinnerWrite),
		renderer:   renderer,
		confirm:    styles.NewConfirm(theme, "Add these settings with default values?").WithDetail(configFile),
		state:      migrateStateConfirm,
		migrate:    migrate,
		configFile: configFile,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderMigrationSuccess(len(msg.added), m.configFile)
		return m, tea.Quit
	}

	if m.state == migrateStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				m.state = migrateStateRunning
				return m, m.runMigration()
			}
			m.quitting = true
			return m, tea.Quit
		}

		return m, cmd
	}

	return m, nil
}

func (m migrateModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}

	switch m.state {
	case migrateStateRunning:
		return fmt.Sprintf("\n  %s Writing %s\n", m.spinner.View(), m.configFile)
	case migrateStateDone:
		return m.result
	default:
		return m.confirm.View()
	}
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		added, err := m.migrate()
		return migrateResultMsg{added: added, err: err}
	}
}

// runMigrateWithConfirmation runs the migrate with an interactive confirmation dialog.
func runMigrateWithConfirmation(
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	migrator *config.Migrator,
	configFile string,
) error {
	m := newMigrateModel(renderer, theme, configFile, func() ([]string, error) {
		return migrator.Migrate(configFile)
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
