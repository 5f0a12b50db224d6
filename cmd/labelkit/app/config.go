package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/labelkit/internal/config"
	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Fixture and reconciliation settings
	FixtureDir string
	FixtureExt string
	Fold       string
	RenameMode string

	// Logging configuration
	LogLevel    string // from --log-level
	EnvLogLevel string // from LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (LABELKIT_ prefix)
// 3. .env files
// 4. Config file (~/.labelkit.yaml or ./.labelkit.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.SetDefault(config.KeyFixtureExt, constants.DefaultExtension)

	// Search for config in standard locations
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(constants.ConfigFileName)

	if err := readConfig(); err != nil {
		return nil, err
	}

	c := &Config{
		Format:     viper.GetString("format"),
		ConfigFile: viper.ConfigFileUsed(),

		LogLevel:    "",
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}
	c.loadSettings()

	return c, nil
}

// UseConfigFile reads an explicit config file and refreshes the settings it
// can change.
func (c *Config) UseConfigFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return errors.NewConfigError("config", "failed to read "+path, err)
	}
	c.ConfigFile = viper.ConfigFileUsed()
	c.loadSettings()
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func (c *Config) loadSettings() {
	c.FixtureDir = config.FixtureDir()
	c.FixtureExt = config.FixtureExtension()
	c.Fold = config.GetString(config.KeyFold)
	c.RenameMode = config.GetString(config.KeyRenameMode)
}

// readConfig reads the config file, ignoring a missing one.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}
	return errors.NewConfigError("config", "failed to read config file", err)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
