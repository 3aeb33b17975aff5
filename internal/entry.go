// Package internal wires configuration, the on-disk database and the
// resolution engine into one program invocation.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hartmannw/navigate/internal/menu"
	"github.com/hartmannw/navigate/internal/resolve"
	"github.com/hartmannw/navigate/internal/store"
	"github.com/hartmannw/navigate/pkg/config"
)

// DataDirEnv names the environment variable holding the data directory.
// Every invocation requires it; the database and the optional configuration
// file live there.
const DataDirEnv = "NAVIGATE_DATA"

// ConfigFilename is the configuration file looked up inside the data
// directory when no explicit path is given.
const ConfigFilename = "config.yaml"

// Run executes one invocation: load the database, resolve the request,
// persist the database, and return the directory to emit. An empty result
// with a nil error means the invocation resolved no directory; the caller
// exits non-zero without output. A non-nil error is fatal and guarantees
// the database on disk was left untouched.
func Run(ctx context.Context, opts ...Option) (string, error) {
	app := &application{
		input: os.Stdin,
		msgs:  os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}

	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		return "", fmt.Errorf("need to set the %s environment variable", DataDirEnv)
	}

	cfg := app.config
	if cfg == nil {
		cfg = NewDefaultConfig()
		path := app.configPath
		if path == "" {
			path = filepath.Join(dataDir, ConfigFilename)
		}
		if err := config.LoadOptional(path, cfg); err != nil {
			return "", fmt.Errorf("load config: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(app.msgs, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Debug("configuration loaded",
		slog.String("data_dir", dataDir),
		slog.String("database", cfg.Database.Filename),
		slog.String("log_level", cfg.App.LogLevel.String()))

	st := store.New(filepath.Join(dataDir, cfg.Database.Filename))
	db, err := st.Load()
	if err != nil {
		return "", err
	}

	m := menu.New(app.input, app.msgs, cfg.Menu.MaxChoices)
	resolver := resolve.New(db, cfg.Frecency.Model(), m, app.msgs, app.resolveOpts...)

	res, err := resolver.Resolve(app.request)
	if err != nil {
		return "", err
	}

	// Persistence is best effort: a failed save loses one visit, never the
	// resolved directory.
	if err := st.Save(db); err != nil {
		slog.Error("database not saved", slog.String("error", err.Error()))
	}

	if !res.Resolved {
		return "", nil
	}
	return res.Path, nil
}
