package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oportunidadeshoy/migration-tools/pkg/serviceaccount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, serviceaccount.DefaultKeyFile, cfg.ServiceAccount.KeyFile)
		assert.Equal(t, ".", cfg.Migration.FixturesDir)
		assert.Equal(t, 500, cfg.Migration.BatchSize)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `
serviceaccount:
  keyfile: ops/service-account.json
migration:
  fixturesdir: ./fixtures
  batchsize: 250
loglevel: debug
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "ops/service-account.json", cfg.ServiceAccount.KeyFile)
		assert.Equal(t, "./fixtures", cfg.Migration.FixturesDir)
		assert.Equal(t, 250, cfg.Migration.BatchSize)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("rejects non-positive batch size", func(t *testing.T) {
		dir := t.TempDir()
		content := `
migration:
  batchsize: 0
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch size")
	})

	t.Run("malformed config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("[unclosed"), 0o644))

		_, err := Load(dir)
		require.Error(t, err)
	})
}
