package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"BOOKINDEX_ENVIRONMENT",
		"BOOKINDEX_DATASET_PATH",
		"BOOKINDEX_SELF_CHECK",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Environment)
	assert.Equal(t, "books.csv", cfg.DatasetPath)
	assert.True(t, cfg.SelfCheck)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("BOOKINDEX_ENVIRONMENT", "prod")
	t.Setenv("BOOKINDEX_DATASET_PATH", "/data/books.csv")
	t.Setenv("BOOKINDEX_SELF_CHECK", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Environment)
	assert.Equal(t, "/data/books.csv", cfg.DatasetPath)
	assert.False(t, cfg.SelfCheck)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "BOOKINDEX_DATASET_PATH=/srv/books.csv\nBOOKINDEX_SELF_CHECK=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/books.csv", cfg.DatasetPath)
	assert.False(t, cfg.SelfCheck)
	assert.Equal(t, EnvDev, cfg.Environment)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("BOOKINDEX_ENVIRONMENT", "staging")

	_, err := Load("")
	require.Error(t, err)
}

func TestEnvironment_Validate(t *testing.T) {
	require.NoError(t, EnvDev.Validate())
	require.NoError(t, EnvProd.Validate())
	require.Error(t, Environment("").Validate())
}
