package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/agentstation/labelkit/pkg/errors"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	app, err := New("1.0.0", "abc123", "2024-01-01", "test", opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.Fs() == nil {
		t.Error("Fs() returned nil")
	}
	if app.FixtureExtension() != "csv" {
		t.Errorf("FixtureExtension() = %s, want csv", app.FixtureExtension())
	}
}

// TestApp_Options verifies functional options override defaults.
func TestApp_Options(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := zerolog.Nop()
	cfg := &Config{Format: "yaml", FixtureDir: "/fixtures", FixtureExt: "txt"}

	app := newTestApp(t, WithFs(fs), WithLogger(&logger), WithConfig(cfg))

	if app.Fs() != fs {
		t.Error("WithFs() was not applied")
	}
	if app.Logger() != &logger {
		t.Error("WithLogger() was not applied")
	}
	if app.OutputFormat() != "yaml" {
		t.Errorf("OutputFormat() = %s, want yaml", app.OutputFormat())
	}
	if app.FixtureDir() != "/fixtures" {
		t.Errorf("FixtureDir() = %s, want /fixtures", app.FixtureDir())
	}
	if app.FixtureExtension() != "txt" {
		t.Errorf("FixtureExtension() = %s, want txt", app.FixtureExtension())
	}
}

// TestApp_WithNilFs verifies a nil filesystem is rejected.
func TestApp_WithNilFs(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := New("1.0.0", "", "", "", WithFs(nil))
	if !errors.IsValidationError(err) {
		t.Fatalf("New(WithFs(nil)) error = %v, want validation error", err)
	}
}

// TestApp_ReconcileOptions verifies fold and rename mode parsing.
func TestApp_ReconcileOptions(t *testing.T) {
	tests := []struct {
		name    string
		fold    string
		mode    string
		wantErr string
	}{
		{name: "defaults"},
		{name: "unicode copy", fold: "unicode", mode: "copy"},
		{name: "bad fold", fold: "upper", wantErr: "fold"},
		{name: "bad mode", mode: "move", wantErr: "rename_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, WithConfig(&Config{Fold: tt.fold, RenameMode: tt.mode}))

			opts, err := app.ReconcileOptions()
			if tt.wantErr != "" {
				var cfgErr *errors.ConfigError
				if err == nil || !asConfigError(err, &cfgErr) {
					t.Fatalf("ReconcileOptions() error = %v, want ConfigError", err)
				}
				if cfgErr.Component != tt.wantErr {
					t.Errorf("ConfigError.Component = %q, want %q", cfgErr.Component, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReconcileOptions() failed: %v", err)
			}
			if len(opts) != 2 {
				t.Errorf("ReconcileOptions() returned %d options, want 2", len(opts))
			}
		})
	}
}

func asConfigError(err error, target **errors.ConfigError) bool {
	e, ok := err.(*errors.ConfigError)
	if ok {
		*target = e
	}
	return ok
}
