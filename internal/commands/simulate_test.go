package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/config"
)

// scaffoldProject writes a minimal runnable project into dir.
func scaffoldProject(t *testing.T, dir string, mutate func(*config.Config)) string {
	t.Helper()

	accounts := `name,type,balance,rate,amount_due,next_date,timebase,frequency,end_date,sell_price,term_years
CHGF,CASH,4000,,,,,,,,
FGIF,SAVINGS,,3.5,,,,,,,
PAY,REVENUE,,,1000,2026-01-09,w,2,2036-01-01,,
RENT,EXPENSE,,,1200,2026-01-01,m,1,2036-01-01,,
CAR_LOAN,SIMPLE LOAN,6000,6.9,220,2026-01-20,m,1,,,
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.csv"), []byte(accounts), 0o644))

	cfg := config.Default()
	cfg.StartDate = "2026-01-01"
	cfg.EndDate = "2026-02-01"
	if mutate != nil {
		mutate(cfg)
	}
	path := filepath.Join(dir, "flowcast.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestRunSimulatePrintsSummary(t *testing.T) {
	dir := t.TempDir()
	configPath := scaffoldProject(t, dir, nil)

	var out strings.Builder
	require.NoError(t, runSimulate(configPath, false, "", &out))
	assert.Contains(t, out.String(), "Cumulative Interest: $")
	assert.Contains(t, out.String(), "FGIF Final Balance: $")
}

func TestRunSimulateSavesResults(t *testing.T) {
	dir := t.TempDir()
	configPath := scaffoldProject(t, dir, nil)
	outputDir := filepath.Join(dir, "results")

	var out strings.Builder
	require.NoError(t, runSimulate(configPath, true, outputDir, &out))

	data, err := os.ReadFile(filepath.Join(outputDir, "results.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 32, "header plus one row per January day")

	for _, name := range []string{"buffer_v_time.png", "loans_and_reserve_v_time.png"} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunSimulateScheduledPurchase(t *testing.T) {
	dir := t.TempDir()
	configPath := scaffoldProject(t, dir, func(cfg *config.Config) {
		cfg.Purchases = map[string]config.Purchase{
			"laptop": {Amount: 1500, Date: "2026-01-12"},
		}
	})

	var out strings.Builder
	require.NoError(t, runSimulate(configPath, false, "", &out))
}

func TestRunSimulateMissingBufferAccount(t *testing.T) {
	dir := t.TempDir()
	configPath := scaffoldProject(t, dir, func(cfg *config.Config) {
		cfg.BufferAccount = "NOPE"
	})

	var out strings.Builder
	err := runSimulate(configPath, false, "", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer account")
}

func TestRunSimulateBadConfigPath(t *testing.T) {
	var out strings.Builder
	err := runSimulate(filepath.Join(t.TempDir(), "nope.yaml"), false, "", &out)
	assert.Error(t, err)
}
