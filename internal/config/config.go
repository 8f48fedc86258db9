// Package config resolves runtime settings from defaults and GLASSQUIZ_*
// environment variables. Command-line flags override both.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const envPrefix = "GLASSQUIZ_"

// Environment variable names.
const (
	EnvCatalog  = envPrefix + "CATALOG"
	EnvLogFile  = envPrefix + "LOG_FILE"
	EnvLogLevel = envPrefix + "LOG_LEVEL"
	EnvSound    = envPrefix + "SOUND"
)

// Config holds application settings.
type Config struct {
	// CatalogPath is a YAML, SQLite or XLSX catalog. Empty uses the
	// built-in catalog.
	CatalogPath string

	// LogFile receives structured logs. Empty disables logging; the
	// terminal belongs to the UI.
	LogFile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// Sound enables the terminal bell on answers.
	Sound bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Sound:    true,
	}
}

// FromEnv returns Default overridden by any GLASSQUIZ_* variables that are
// set. An unparseable GLASSQUIZ_SOUND is an error.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvSound); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSound, err)
		}
		cfg.Sound = on
	}
	return cfg, nil
}
