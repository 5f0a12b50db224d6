package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.FixtureExt != "csv" {
		t.Errorf("FixtureExt = %s, want csv", config.FixtureExt)
	}
}

// TestConfig_EnvironmentVariables verifies prefixed environment variables.
func TestConfig_EnvironmentVariables(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("LABELKIT_FIXTURE_DIR", "/tmp/fixtures")
	t.Setenv("LABELKIT_FOLD", "unicode")
	t.Setenv("LABELKIT_RENAME_MODE", "copy")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.FixtureDir != "/tmp/fixtures" {
		t.Errorf("FixtureDir = %s, want /tmp/fixtures", config.FixtureDir)
	}
	if config.Fold != "unicode" {
		t.Errorf("Fold = %s, want unicode", config.Fold)
	}
	if config.RenameMode != "copy" {
		t.Errorf("RenameMode = %s, want copy", config.RenameMode)
	}
	if config.EnvLogLevel != "debug" {
		t.Errorf("EnvLogLevel = %s, want debug", config.EnvLogLevel)
	}
}

// TestConfig_UseConfigFile verifies an explicit config file is read.
func TestConfig_UseConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "labelkit.yaml")
	content := "fixture_dir: /data/fixtures\nfixture_ext: txt\nfold: unicode\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	config := &Config{}
	if err := config.UseConfigFile(path); err != nil {
		t.Fatalf("UseConfigFile() failed: %v", err)
	}

	if config.FixtureDir != "/data/fixtures" {
		t.Errorf("FixtureDir = %s, want /data/fixtures", config.FixtureDir)
	}
	if config.FixtureExt != "txt" {
		t.Errorf("FixtureExt = %s, want txt", config.FixtureExt)
	}
	if config.Fold != "unicode" {
		t.Errorf("Fold = %s, want unicode", config.Fold)
	}
}

// TestConfig_UseConfigFileMissing verifies a missing explicit file fails.
func TestConfig_UseConfigFileMissing(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config := &Config{}
	if err := config.UseConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("UseConfigFile() succeeded for a missing file")
	}
}

// TestConfig_UpdateFromFlags verifies flags override loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: ""}
	config.UpdateFromFlags(true, false, true, "", "trace")

	if !config.Verbose || config.Quiet || !config.NoColor {
		t.Errorf("boolean flags not applied: %+v", config)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %s, empty flag must keep yaml", config.Format)
	}
	if config.LogLevel != "trace" {
		t.Errorf("LogLevel = %s, want trace", config.LogLevel)
	}
}
