package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"UIA_MCP_TRANSPORT", "UIA_MCP_PORT", "UIA_MCP_LOG_LEVEL", "UIA_MCP_POLL_INTERVAL", "UIA_MCP_DEFAULT_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, DefaultWaitTimeout, cfg.DefaultTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("UIA_MCP_TRANSPORT", "streamable-http")
	t.Setenv("UIA_MCP_PORT", "9090")
	t.Setenv("UIA_MCP_LOG_LEVEL", "debug")
	t.Setenv("UIA_MCP_POLL_INTERVAL", "150")
	t.Setenv("UIA_MCP_DEFAULT_TIMEOUT", "2s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 150*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.DefaultTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"UIA_MCP_TRANSPORT", "sse"},
		{"UIA_MCP_PORT", "eighty"},
		{"UIA_MCP_PORT", "70000"},
		{"UIA_MCP_POLL_INTERVAL", "soon"},
		{"UIA_MCP_POLL_INTERVAL", "0"},
		{"UIA_MCP_DEFAULT_TIMEOUT", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("UIA_MCP_PORT")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("UIA_MCP_PORT=7070\n"), 0o644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("UIA_MCP_PORT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_NoDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}
