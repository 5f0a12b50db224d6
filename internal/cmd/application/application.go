// Package application defines the dependencies CLI commands take from the app.
package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/labelkit/pkg/labels"
)

// Application is implemented by the CLI app and by Mock. Commands accept it,
// or a narrower interface of their own, instead of the concrete app type.
type Application interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Fs returns the filesystem fixture commands operate on.
	Fs() afero.Fs

	// FixtureDir returns the default fixture directory; empty means the
	// current working directory.
	FixtureDir() string

	// FixtureExtension returns the default fixture file extension.
	FixtureExtension() string

	// ReconcileOptions returns reconciler options built from configuration.
	ReconcileOptions() ([]labels.Option, error)

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
