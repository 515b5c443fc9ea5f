package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionSimulator_TracksSpend(t *testing.T) {
	sim := NewCollectionSimulator("")
	ctx := context.Background()

	require.NoError(t, sim.Purchase(ctx, "Common Egg", 250))
	require.NoError(t, sim.Purchase(ctx, "Common Egg", 250))
	require.NoError(t, sim.Purchase(ctx, "Spotted Egg", 1000))

	assert.Equal(t, 1500, sim.CoinsSpent)
	assert.Equal(t, map[string][]int{
		"Common Egg":  {250, 250},
		"Spotted Egg": {1000},
	}, sim.Portfolio())
}

func TestCollectionSimulator_WritesActionLog(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "actions.log")
	sim := NewCollectionSimulator(logFile)

	require.NoError(t, sim.Purchase(context.Background(), "Iceberg Egg", 7500))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Hatched Iceberg Egg for 7500"))
}
