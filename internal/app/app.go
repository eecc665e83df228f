package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/shopfilter/internal/catalog"
	"github.com/five82/shopfilter/internal/config"
	"github.com/five82/shopfilter/internal/controller"
	"github.com/five82/shopfilter/internal/location"
	"github.com/five82/shopfilter/internal/metrics"
	"github.com/five82/shopfilter/internal/prefs"
	"github.com/five82/shopfilter/internal/state"
	"github.com/five82/shopfilter/internal/ui"
)

// Options configure the shopfilter application. Non-empty fields override
// the config file.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/shopfilter/prefs.toml
	StartURL    string
	BaseURL     string
	LogFile     string
	MetricsAddr string
}

// Run boots the shopfilter TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: env.Controller,
		History:    env.History,
		Loader:     env.Loader,
		Store:      env.Store,
		Logger:     env.Logger,
		LogPath:    env.Config.LogFile,
		ThemeName:  env.Prefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Collapsed:  env.Prefs.Collapsed,
	})
}

// Env is the wired object graph behind the UI.
type Env struct {
	Config     config.Config
	Prefs      prefs.Prefs
	Logger     *slog.Logger
	History    *location.History
	Store      *state.Store
	Metrics    *metrics.Metrics
	Controller *controller.Controller
	Loader     *catalog.Loader

	logFile *os.File
}

// Setup loads configuration, opens the session log and builds every
// collaborator. The controller has already imported the start URL when Setup
// returns.
func Setup(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, err
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	env := &Env{Config: cfg, Prefs: prefs.Load(opts.PrefsPath), Logger: logger, logFile: logFile}

	client, err := catalog.NewClient(cfg.BaseURL)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	history, err := location.NewHistory(cfg.StartURL)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("start url: %w", err)
	}

	env.History = history
	env.Store = &state.Store{}
	env.Metrics = metrics.New()
	env.Controller = controller.New(controller.Options{
		Port:    history,
		Store:   env.Store,
		Logger:  logger.With("component", "controller"),
		Metrics: env.Metrics,
	})
	env.Loader = &catalog.Loader{
		Fetcher: client,
		Logger:  logger.With("component", "catalog"),
		Metrics: env.Metrics,
	}

	env.Controller.Import()
	logger.Info("session started", "url", history.URL(), "api", client.BaseURL())

	if cfg.MetricsAddr != "" {
		addr, err := StartMetricsServer(ctx, cfg.MetricsAddr, env.Metrics.Handler(), logger)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("metrics: %w", err)
		}
		logger.Info("serving metrics", "addr", addr.String())
	}
	return env, nil
}

// Close releases the session log.
func (e *Env) Close() {
	if e.logFile != nil {
		_ = e.logFile.Close()
		e.logFile = nil
	}
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.StartURL != "" {
		cfg.StartURL = opts.StartURL
	}
	if opts.MetricsAddr != "" {
		cfg.MetricsAddr = opts.MetricsAddr
	}
	if opts.LogFile != "" {
		path, err := config.ExpandPath(opts.LogFile)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = path
	}
	return nil
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
