package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Sound)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvCatalog, "/tmp/quiz.yaml")
	t.Setenv(EnvLogFile, "/tmp/quiz.log")
	t.Setenv(EnvLogLevel, " DEBUG ")
	t.Setenv(EnvSound, "false")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		CatalogPath: "/tmp/quiz.yaml",
		LogFile:     "/tmp/quiz.log",
		LogLevel:    "debug",
		Sound:       false,
	}, cfg)
}

func TestFromEnv_Unset(t *testing.T) {
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvSound, "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv_BadSound(t *testing.T) {
	t.Setenv(EnvSound, "loud")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSound)
}
