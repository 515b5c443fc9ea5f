package tools

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendTrend(t *testing.T) {
	mean, std := SpendTrend([]float64{10, 20, 30})
	assert.InDelta(t, 20.0, mean, 1e-9)
	assert.InDelta(t, 10.0, std, 1e-9)
}

func TestZScore(t *testing.T) {
	series := []float64{10, 20, 30}
	assert.InDelta(t, 1.0, ZScore(30, series), 1e-9)
	assert.InDelta(t, -1.0, ZScore(10, series), 1e-9)

	// A flat series has no spread; z-score degrades to zero.
	assert.Zero(t, ZScore(42, []float64{5, 5, 5}))
}

func TestDecomposeRestockCycle(t *testing.T) {
	// Synthetic series: rising trend plus a clean period-4 cycle.
	period := 4
	var series []float64
	cycle := []float64{0, 10, 0, -10}
	for i := 0; i < 5*period; i++ {
		series = append(series, 100+float64(i)+cycle[i%period])
	}

	trend, seasonal, resid, err := DecomposeRestockCycle(series, period)
	require.NoError(t, err)
	assert.Len(t, trend, len(series))
	assert.Len(t, seasonal, len(series))
	assert.Len(t, resid, len(series))

	// Components must add back up to the observed series.
	for i := range series {
		sum := trend[i] + seasonal[i] + resid[i]
		assert.InDelta(t, series[i], sum, 1e-6, "point %d", i)
	}
}

func TestDecomposeRestockCycle_Invalid(t *testing.T) {
	t.Run("period too small", func(t *testing.T) {
		_, _, _, err := DecomposeRestockCycle([]float64{1, 2, 3, 4}, 1)
		assert.Error(t, err)
	})

	t.Run("series too short", func(t *testing.T) {
		_, _, _, err := DecomposeRestockCycle([]float64{1, 2, 3}, 4)
		assert.Error(t, err)
	})
}

func TestResidualStability(t *testing.T) {
	flat := ResidualStability([]float64{100, 100, 100})
	noisy := ResidualStability([]float64{100, 150, 50})
	assert.Zero(t, flat)
	assert.True(t, noisy > flat)
	assert.False(t, math.IsNaN(noisy))
}
