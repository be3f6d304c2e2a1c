package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/paths"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"TINT_THEME", "TINT_STYLE", "TINT_PAGING", "TINT_PAGER", "TINT_COLOR", "TINT_TABS"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "monokai", cfg.Theme)
	assert.Equal(t, []string{"full"}, cfg.Style)
	assert.Equal(t, "auto", cfg.Paging)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "", cfg.Pager)
	assert.Equal(t, 4, cfg.Tabs)
}

func TestLoadUserFiles(t *testing.T) {
	clearEnv(t)

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("theme = \"dracula\"\ntabs = 8\n"), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "dracula", cfg.Theme)
		assert.Equal(t, 8, cfg.Tabs)
		assert.Equal(t, []string{"full"}, cfg.Style, "unset keys keep their defaults")
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("style:\n  - numbers\n  - grid\npaging: never\n"), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"numbers", "grid"}, cfg.Style)
		assert.Equal(t, "never", cfg.Paging)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("theme = \n"), 0644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsKind(err, errors.ErrConfig))
	})
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"dracula\"\n"), 0644))

	t.Setenv("TINT_THEME", "github")
	t.Setenv("TINT_STYLE", "numbers, header")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "github", cfg.Theme)
	assert.Equal(t, []string{"numbers", "header"}, cfg.Style)
}

func TestLoadUsesConfigPathEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = \"never\"\n"), 0644))
	t.Setenv(paths.EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
}

func TestGenerateConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, GenerateConfigFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# theme = 'monokai'")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		assert.True(t, trimmed == "" || strings.HasPrefix(trimmed, "#"), "uncommented line %q", line)
	}

	// the generated file loads back to the defaults
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "monokai", cfg.Theme)

	err = GenerateConfigFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrConfig))
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# note\n\n[section]\nkey = 1\n"
	assert.Equal(t, "# note\n\n[section]\n# key = 1\n", commentOutConfigValues(in))
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), `theme = "monokai"`)
}
