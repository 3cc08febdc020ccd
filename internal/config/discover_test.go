package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		assert.NoError(t, os.Chdir(orig), "failed to restore working directory")
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "marquee", "config.toml"))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/marquee/config.toml", DefaultPath())
}

func TestDiscover_Explicit(t *testing.T) {
	path := writeConfig(t, "[server]")
	t.Setenv(EnvVar, "/nonexistent/config.toml")

	got, err := Discover(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_ExplicitNotFound(t *testing.T) {
	_, err := Discover("/nonexistent/explicit.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/explicit.toml")
}

func TestDiscover_EnvVar(t *testing.T) {
	path := writeConfig(t, "[server]")
	t.Setenv(EnvVar, path)

	got, err := Discover("")
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvVarNotFound(t *testing.T) {
	t.Setenv(EnvVar, "/nonexistent/config.toml")

	_, err := Discover("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvVar)
}

func TestDiscover_CurrentDir(t *testing.T) {
	t.Setenv(EnvVar, "")
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "config.toml"), []byte("[server]"), 0o644))
	chdir(t, tmp)

	got, err := Discover("")
	require.NoError(t, err)
	assert.Equal(t, "./config.toml", got)
}

func TestDiscover_XDG(t *testing.T) {
	t.Setenv(EnvVar, "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	want := filepath.Join(xdg, "marquee", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o755))
	require.NoError(t, os.WriteFile(want, []byte("[server]"), 0o644))
	chdir(t, t.TempDir())

	got, err := Discover("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDiscover_NotFound(t *testing.T) {
	if _, err := os.Stat("/etc/marquee/config.toml"); err == nil {
		t.Skip("system config present")
	}
	t.Setenv(EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
	chdir(t, t.TempDir())

	_, err := Discover("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config not found")
}
