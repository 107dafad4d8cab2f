package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evilgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "max_paths: 8\nformat: text\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxPaths)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "verbose: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().MaxPaths, cfg.MaxPaths)
	assert.Equal(t, FormatNDJSON, cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "max_paths: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "format: xml\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "max_paths: [1\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
