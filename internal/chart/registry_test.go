package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/account"
)

func TestBuildPreservesChartOrder(t *testing.T) {
	r, err := Build(DefaultChart())
	require.NoError(t, err)

	assert.Equal(t, []string{"CHGF", "FGIF", "CA_EMPLOYER", "RENT", "UTILITIES", "CAR_LOAN", "CAR"}, r.Names())
	assert.Equal(t, 1, r.NumLoans())

	chgf, ok := r.Get("CHGF")
	require.True(t, ok)
	assert.Equal(t, account.KindChecking, chgf.Kind())
	assert.True(t, chgf.Balance().Equal(dec("5000")))
}

func TestRegistryByKind(t *testing.T) {
	r, err := Build(DefaultChart())
	require.NoError(t, err)

	expenses := r.ByKind(account.KindExpense)
	require.Len(t, expenses, 2)
	assert.Equal(t, "RENT", expenses[0].Name())
	assert.Equal(t, "UTILITIES", expenses[1].Name())

	revenues := r.ByKind(account.KindRevenue)
	require.Len(t, revenues, 1)
	assert.Equal(t, "CA_EMPLOYER", revenues[0].Name())
}

func TestRegistryUnregister(t *testing.T) {
	r, err := Build(DefaultChart())
	require.NoError(t, err)

	r.Unregister("CAR_LOAN")
	_, ok := r.Get("CAR_LOAN")
	assert.False(t, ok)
	assert.Equal(t, 0, r.NumLoans())
	assert.NotContains(t, r.Names(), "CAR_LOAN")
}

func TestBuildUnknownType(t *testing.T) {
	specs := DefaultChart()
	specs[0].Type = "BROKERAGE"
	_, err := Build(specs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account type")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.csv")

	var sb strings.Builder
	require.NoError(t, WriteAccounts(&sb, DefaultChart()))
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Names(), 7)
}
