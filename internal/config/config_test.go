package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 4, cfg.Indent)
	assert.False(t, cfg.SortKeys)
	assert.False(t, cfg.Compact)
	assert.True(t, cfg.TrailingNewline)
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yml")
	content := `
indent: 2
sort_keys: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Indent)
	assert.True(t, cfg.SortKeys)
	// unspecified fields keep their defaults
	assert.False(t, cfg.Compact)
	assert.True(t, cfg.TrailingNewline)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("indent: [not a number"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_NegativeIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.yml")
	require.NoError(t, os.WriteFile(path, []byte("indent: -3"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent must not be negative")
}

func TestFindConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	configPath := filepath.Join(tempDir, ".jsontool.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("indent: 2\n"), 0644))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	}()
	require.NoError(t, os.Chdir(nested))

	found := FindConfigFile()
	require.NotEmpty(t, found, "config file in a parent directory should be found")
	assert.Equal(t, ".jsontool.yml", filepath.Base(found))
}
