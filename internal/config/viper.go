// Package config exposes the viper-backed settings shared by CLI commands.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/errors"
	"github.com/agentstation/labelkit/pkg/labels"
)

// Configuration keys.
const (
	KeyFixtureDir = "fixture_dir"
	KeyFixtureExt = "fixture_ext"
	KeyFold       = "fold"
	KeyRenameMode = "rename_mode"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(EnvName(key))
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// EnvName returns the prefixed environment variable for a configuration key.
func EnvName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return constants.EnvPrefix + "_" + strings.ToUpper(r.Replace(key))
}

// FixtureDir returns the configured fixture directory. Empty means the
// current working directory.
func FixtureDir() string {
	return GetString(KeyFixtureDir)
}

// FixtureExtension returns the configured fixture file extension.
func FixtureExtension() string {
	if ext := GetString(KeyFixtureExt); ext != "" {
		return ext
	}
	return constants.DefaultExtension
}

// ReconcileOptions parses fold and rename mode settings into reconciler
// options. Invalid values are reported as configuration errors keyed by
// KeyFold or KeyRenameMode.
func ReconcileOptions(fold, mode string) ([]labels.Option, error) {
	f, err := labels.ParseFolding(fold)
	if err != nil {
		return nil, errors.WrapConfig(KeyFold, err)
	}
	m, err := labels.ParseRenameMode(mode)
	if err != nil {
		return nil, errors.WrapConfig(KeyRenameMode, err)
	}
	return []labels.Option{labels.WithFolding(f), labels.WithRenameMode(m)}, nil
}
