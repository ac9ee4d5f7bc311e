package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/chart"
	"github.com/flowcast-dev/flowcast/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	var out strings.Builder

	require.NoError(t, runInit(dir, &out))
	assert.Contains(t, out.String(), "Initialized flowcast project")

	// Config is loadable and points at the sample chart.
	cfg, err := config.Load(filepath.Join(dir, "flowcast.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "CHGF", cfg.BufferAccount)

	// The sample chart builds a working registry.
	registry, err := chart.Load(filepath.Join(dir, cfg.Accounts))
	require.NoError(t, err)
	_, ok := registry.Get(cfg.BufferAccount)
	assert.True(t, ok)
	_, ok = registry.Get(cfg.ReserveAccount)
	assert.True(t, ok)

	// Results directory exists for --save-results output.
	info, err := os.Stat(filepath.Join(dir, "results"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
