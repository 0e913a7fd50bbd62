package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newParsedFlagSet(t,
		"--endpoint", "https://vault.example/rest",
		"--timeout", "45s",
		"--log-level", "info",
		"--log-file", "/tmp/vault.log",
		"-c", "/etc/vault.json",
		"--format", "json",
		"--no-color",
	)

	cfg, err := ParseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example/rest", cfg.Adapter.Endpoint)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/tmp/vault.log", cfg.Log.File)
	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, "json", cfg.Output.Format)
	require.NotNil(t, cfg.Output.NoColor)
	assert.True(t, *cfg.Output.NoColor)
}

// TestParseFlags_UnsetFlagsStayZero verifies that only changed flags are read.
func TestParseFlags_UnsetFlagsStayZero(t *testing.T) {
	cfg, err := ParseFlags(newParsedFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_BadDuration(t *testing.T) {
	fs := newParsedFlagSet(t)
	err := fs.Parse([]string{"--timeout", "later"})
	assert.Error(t, err)
}
