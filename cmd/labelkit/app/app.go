// Package app provides the application context and dependency management
// for the labelkit CLI. It centralizes configuration, logging and the
// filesystem so commands receive their dependencies instead of reaching for
// globals.
package app

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/labelkit/internal/cmd/application"
	"github.com/agentstation/labelkit/internal/cmd/output"
	"github.com/agentstation/labelkit/internal/config"
	"github.com/agentstation/labelkit/pkg/errors"
	"github.com/agentstation/labelkit/pkg/labels"
)

// App represents the labelkit application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	fs     afero.Fs
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment,
// .env files and the config file, then customized by the options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfig("app", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Fs returns the filesystem fixture commands operate on.
func (a *App) Fs() afero.Fs {
	return a.fs
}

// OutputFormat returns the requested output format, or one detected from
// the terminal when none was requested.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// FixtureDir returns the configured fixture directory.
func (a *App) FixtureDir() string {
	return a.config.FixtureDir
}

// FixtureExtension returns the configured fixture extension.
func (a *App) FixtureExtension() string {
	return a.config.FixtureExt
}

// ReconcileOptions returns reconciler options for the configured folding
// and rename mode.
func (a *App) ReconcileOptions() ([]labels.Option, error) {
	return config.ReconcileOptions(a.config.Fold, a.config.RenameMode)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFs sets the filesystem (useful for testing).
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		if fs == nil {
			return errors.NewValidationError("fs", nil, "filesystem must not be nil")
		}
		a.fs = fs
		return nil
	}
}
