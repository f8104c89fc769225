package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/codereview"
	"github.com/fwojciec/codereview/bubbletea"
	"github.com/fwojciec/codereview/chroma"
	"github.com/fwojciec/codereview/clipboard"
	"github.com/fwojciec/codereview/fpdf"
	cfs "github.com/fwojciec/codereview/fs"
	chttp "github.com/fwojciec/codereview/http"
	"github.com/fwojciec/codereview/jsonl"
	"github.com/fwojciec/codereview/lipgloss"
	clog "github.com/fwojciec/codereview/log"
	"github.com/fwojciec/codereview/sqlite"
	"github.com/spf13/viper"
)

// Config holds the resolved settings.
type Config struct {
	Server    string
	OutputDir string
	StateDir  string
	Timeout   time.Duration
	LogLevel  string
}

// setDefaults registers the default for every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server", chttp.DefaultServer)
	v.SetDefault("output_dir", ".")
	v.SetDefault("state_dir", cfs.DefaultStateDir())
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("log_level", "info")
}

// LoadConfig resolves settings from flags bound to v, CODEREVIEW_* env
// vars, the config file and defaults, in that order. A missing default
// config file is not an error; a missing explicit one is.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(cfs.DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CODEREVIEW")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Server:    v.GetString("server"),
		OutputDir: v.GetString("output_dir"),
		StateDir:  v.GetString("state_dir"),
		Timeout:   v.GetDuration("timeout"),
		LogLevel:  v.GetString("log_level"),
	}
	if _, err := clog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("invalid timeout %s: must not be negative", cfg.Timeout)
	}
	return cfg, nil
}

// Builder creates the App for a command. tui is set for the interactive
// viewer, which logs to a file instead of stderr. The returned func releases
// what the App holds.
type Builder func(ctx context.Context, cfg Config, tui bool) (*App, func(), error)

// buildApp wires the production implementations.
func buildApp(ctx context.Context, cfg Config, tui bool) (*App, func(), error) {
	level, err := clog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	var logger *slog.Logger
	if tui {
		f, err := clog.OpenFile(cfg.StateDir)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f.Close)
		logger = clog.New(f, level)
	} else {
		logger = clog.New(os.Stderr, level)
	}

	store, err := sqlite.Open(ctx, filepath.Join(cfg.StateDir, sqlite.DatabaseName))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, store.Close)

	client := chttp.NewClient(cfg.Server,
		chttp.WithTimeout(cfg.Timeout),
		chttp.WithLogger(logger),
	)
	exporter := fpdf.NewExporter()
	documents := cfs.NewDocumentSaver(cfg.OutputDir)

	app := &App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    logger,
		Reviewer:  client,
		Pinger:    client,
		Exporter:  exporter,
		Documents: documents,
		Loader:    jsonl.NewLoader(),
		History:   jsonl.NewSaver(),
		Themes:    store,
	}

	if tui {
		controller, err := codereview.NewThemeController(ctx, store)
		if err != nil {
			logger.Warn("load theme", "error", err)
		}
		app.Viewer = bubbletea.NewViewer(
			bubbletea.WithReviewer(client),
			bubbletea.WithExporter(exporter),
			bubbletea.WithDocumentSaver(documents),
			bubbletea.WithClipboard(clipboard.Detect()),
			bubbletea.WithThemes(lipgloss.LightTheme(), lipgloss.DarkTheme()),
			bubbletea.WithThemeController(controller),
			bubbletea.WithTokenizer(chroma.NewTokenizer()),
			bubbletea.WithLanguageDetector(codereview.ExtensionDetector{}),
			bubbletea.WithSourceReader(cfs.ReadSource),
			bubbletea.WithLogger(logger),
		)
	}

	return app, cleanup, nil
}
