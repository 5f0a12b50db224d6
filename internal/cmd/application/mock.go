package application

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/labels"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    FixtureDirFunc: func() string { return "/fixtures" },
//	    LoggerFunc: func() *zerolog.Logger {
//	        logger := zerolog.Nop()
//	        return &logger
//	    },
//	}
//	cmd := fixtures.NewCommand(mock)
//	// ... test command
type Mock struct {
	LoggerFunc           func() *zerolog.Logger
	OutputFormatFunc     func() string
	FsFunc               func() afero.Fs
	FixtureDirFunc       func() string
	FixtureExtensionFunc func() string
	ReconcileOptionsFunc func() ([]labels.Option, error)
	VersionFunc          func() string
	CommitFunc           func() string
	DateFunc             func() string
	BuiltByFunc          func() string

	once sync.Once
	fs   afero.Fs
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Fs returns a filesystem using the mock function or a shared in-memory one.
func (m *Mock) Fs() afero.Fs {
	if m.FsFunc != nil {
		return m.FsFunc()
	}
	m.once.Do(func() {
		m.fs = afero.NewMemMapFs()
	})
	return m.fs
}

// FixtureDir returns the fixture directory using the mock function or "".
func (m *Mock) FixtureDir() string {
	if m.FixtureDirFunc != nil {
		return m.FixtureDirFunc()
	}
	return ""
}

// FixtureExtension returns the extension using the mock function or "csv".
func (m *Mock) FixtureExtension() string {
	if m.FixtureExtensionFunc != nil {
		return m.FixtureExtensionFunc()
	}
	return constants.DefaultExtension
}

// ReconcileOptions returns options using the mock function or none.
func (m *Mock) ReconcileOptions() ([]labels.Option, error) {
	if m.ReconcileOptionsFunc != nil {
		return m.ReconcileOptionsFunc()
	}
	return nil, nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
