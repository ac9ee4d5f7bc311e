package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowcast.yaml")

	cfg := Default()
	cfg.FastPayoffEnabled = true
	cfg.Payments = map[string]Payment{
		"piano": {From: "FGIF", To: "CHGF", Amount: 500, Date: "2026-03-01"},
	}
	cfg.Purchases = map[string]Purchase{
		"roof": {Amount: 12000, Date: "2026-06-01"},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowcast.yaml")

	content := `accounts: accounts.csv
start_date: 2026-01-01
end_date: 2026-02-01
fast_payoff_enabled: true
max_checking_balance: 9000
buffer_account: CHGF
reserve_account: FGIF
purchases:
  laptop:
    amount: 2200
    date: 2026-01-15
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.FastPayoffEnabled)
	assert.Equal(t, 9000.0, cfg.MaxCheckingBalance)
	require.Contains(t, cfg.Purchases, "laptop")
	assert.Equal(t, "2026-01-15", cfg.Purchases["laptop"].Date)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "CHGF", cfg.BufferAccount)
	assert.Equal(t, "FGIF", cfg.ReserveAccount)
	assert.Equal(t, 7500.0, cfg.MaxCheckingBalance)
}
