// Package cli wires configuration, logging and storage for the CLI commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/domain/build"
	"github.com/bnema/blockrules/internal/domain/repository"
	"github.com/bnema/blockrules/internal/infrastructure/config"
	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
	"github.com/bnema/blockrules/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/blockrules/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db *sqlite.LazyDB

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configFile (the XDG default when empty) and builds the logger.
// The state database is opened on first use.
func NewApp(configFile string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile == "" {
		mgr, err = config.NewManager()
	} else {
		mgr, err = config.NewManagerForFile(configFile)
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, cleanup, err := NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:     cfg,
		ConfigMgr:  mgr,
		Theme:      styles.NewTheme(),
		db:         sqlite.NewLazyDB(cfg.Database.Path),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: cleanup,
	}, nil
}

// NewLogger builds the logger described by cfg. With logging.file set,
// output goes to a rotating file instead of stderr.
func NewLogger(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	if cfg.File == "" {
		return logging.NewFromConfigValues(cfg.Level, cfg.Format), func() {}, nil
	}

	file, err := logging.NewRotatingFile(cfg.File, cfg.MaxSizeMB, cfg.MaxBackups, cfg.Compress)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Level)
	if cfg.Format == "json" || cfg.Format == "console" {
		logCfg.Format = cfg.Format
	}
	logCfg.Output = file
	return logging.New(logCfg), func() { _ = file.Close() }, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LogsToFile reports whether log output is kept off the terminal.
func (a *App) LogsToFile() bool {
	return a.Config.Logging.File != ""
}

// Sources returns the rule source repository, opening the database if needed.
func (a *App) Sources(ctx context.Context) (repository.RuleSourceRepository, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return nil, err
	}
	return sqlite.NewRuleSourceRepository(db), nil
}

// NewHandler builds a source handler for the configured format, persisting
// to repo.
func (a *App) NewHandler(repo repository.RuleSourceRepository) (*infrafiltering.Handler, error) {
	format, err := infrafiltering.ParseFormat(string(a.Config.Filtering.Format))
	if err != nil {
		return nil, err
	}
	compiler, err := infrafiltering.CompilerFor(format)
	if err != nil {
		return nil, err
	}
	return infrafiltering.NewHandler(infrafiltering.HandlerConfig{
		OutputDir:   a.Config.Filtering.OutputDir,
		MaxParallel: a.Config.Filtering.MaxParallel,
		Compiler:    compiler,
		Repository:  repo,
	})
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}
