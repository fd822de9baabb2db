package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.hcl")

	hcl := `
buy_in = 5
seed   = 42

player "Alice" {
  balance  = 500
  strategy = "call"
}

player "Bob" {
  strategy = "rand"
}

player "Carol" {}
`
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := LoadTableConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.BuyIn)
	assert.Equal(t, int64(42), cfg.Seed)
	require.Len(t, cfg.Players, 3)

	assert.Equal(t, "Alice", cfg.Players[0].Name)
	assert.Equal(t, 500, cfg.Players[0].Balance)
	assert.Equal(t, "call", cfg.Players[0].Strategy)

	// Missing fields fall back to defaults.
	assert.Equal(t, 1000, cfg.Players[1].Balance)
	assert.Equal(t, "rand", cfg.Players[1].Strategy)
	assert.Equal(t, "check", cfg.Players[2].Strategy)
}

func TestLoadTableConfigMissingFile(t *testing.T) {
	cfg, err := LoadTableConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	def := DefaultTableConfig()
	assert.Equal(t, def.BuyIn, cfg.BuyIn)
	assert.Len(t, cfg.Players, len(def.Players))
}

func TestLoadTableConfigRejectsEmptyTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.hcl")
	require.NoError(t, os.WriteFile(path, []byte("buy_in = 2\n"), 0o644))

	_, err := LoadTableConfig(path)
	assert.Error(t, err)
}

func TestLoadTableConfigBadHCL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("player {{{"), 0o644))

	_, err := LoadTableConfig(path)
	assert.Error(t, err)
}
