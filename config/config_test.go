package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 168, cfg.JWT.ExpireHours)
	assert.Equal(t, 168*time.Hour, cfg.JWT.ExpireTime)
	assert.False(t, cfg.Email.Enabled)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfigExternalOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: \":9999\"\n  mode: release\njwt:\n  expire_hours: 24\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	// defaults still fill the gaps
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	t.Setenv("FINTRACK_SERVER_PORT", ":7070")
	t.Setenv("FINTRACK_JWT_SECRET", "env-secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestSafeErrorMessage(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	err := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	// debug mode keeps the detail
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, err.Error(), SafeErrorMessage(err, "Internal Server Error"))

	// release mode hides it
	GlobalConfig.Server.Mode = "release"
	assert.Equal(t, "Internal Server Error", SafeErrorMessage(err, "Internal Server Error"))

	// nil error falls back either way
	assert.Equal(t, "fallback", SafeErrorMessage(nil, "fallback"))
}
