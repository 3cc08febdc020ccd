package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 8080
request_timeout = "5s"

[auth]
jwt_secret = "`+testSecret+`"
token_ttl = "1h"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout.Duration)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL.Duration)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "`+testSecret+`"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.Server.CORSOrigin)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/marquee.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
	assert.Equal(t, "marquee", cfg.Auth.Issuer)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL.Duration)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "${MARQUEE_TEST_NONEXISTENT_SECRET}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"MARQUEE_TEST_NONEXISTENT_SECRET"}, cfgErr.Missing)
}

func TestLoad_EnvVarSubstituted(t *testing.T) {
	t.Setenv("MARQUEE_TEST_SECRET", testSecret)
	path := writeConfig(t, `
[server]
host = "${MARQUEE_TEST_HOST:-127.0.0.1}"

[auth]
jwt_secret = "${MARQUEE_TEST_SECRET}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 99999
`)

	_, err := Load(path)
	require.Error(t, err)
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "auth.jwt_secret") {
		t.Errorf("expected auth.jwt_secret in error, got %v", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
[server]
request_timeout = "soon"
`)

	_, err := LoadWithoutValidation(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.Server.Port)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestWriteDefault_LoadsWithSecret(t *testing.T) {
	t.Setenv("MARQUEE_JWT_SECRET", testSecret)
	path := filepath.Join(t.TempDir(), "marquee", "config.toml")

	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestWriteDefault_RequiresSecret(t *testing.T) {
	t.Setenv("MARQUEE_JWT_SECRET", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MARQUEE_JWT_SECRET: set a signing secret")
}

func TestWriteDefault_DoesNotOverwrite(t *testing.T) {
	path := writeConfig(t, "[server]\n")

	err := WriteDefault(path)
	require.ErrorIs(t, err, ErrExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[server]\n", string(content))
}
