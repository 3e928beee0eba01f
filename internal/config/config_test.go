package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "happy-thoughts", cfg.AppID)
	assert.Equal(t, "classic", cfg.Theme)
	assert.NotEmpty(t, cfg.BasePath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HAPPY_APP_ID", "my-tenant")
	t.Setenv("HAPPY_BASE_PATH", "/tmp/elsewhere")
	t.Setenv("HAPPY_TOKEN", "  Bearer abc  ")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "my-tenant", cfg.AppID)
	assert.Equal(t, "/tmp/elsewhere", cfg.BasePath)
	assert.Equal(t, "Bearer abc", cfg.Token, "token is trimmed, bearer handling is auth's job")
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "conf.yaml")
	require.NoError(t, os.WriteFile(p, []byte("app_id: from-file\ntheme: neon\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AppID)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err, "a missing config file falls back to defaults")
}
