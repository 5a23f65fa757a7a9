package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithNoConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "6379", cfg.Server.Port)
	assert.True(t, cfg.GC.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GLOWKV_SERVER_PORT", "7000")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
}
