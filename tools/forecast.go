package tools

import (
	"fmt"

	"github.com/chewxy/stl"
	"gonum.org/v1/gonum/stat"
)

/*
Trend analysis over per-round series: summary statistics and z-scores
for spend anomalies, STL decomposition for restock cycles.
*/

// SpendTrend returns the mean and standard deviation of a spend series.
func SpendTrend(series []float64) (float64, float64) {
	mean := stat.Mean(series, nil)
	std := stat.StdDev(series, nil)
	return mean, std
}

// ZScore places a value relative to a series.
func ZScore(x float64, series []float64) float64 {
	mean, std := SpendTrend(series)
	if std == 0 {
		return 0
	}
	return (x - mean) / std
}

// DecomposeRestockCycle splits a per-round series into trend, seasonal,
// and residual components at the given periodicity (rounds per shop
// restock). Needs at least two full cycles of data.
func DecomposeRestockCycle(series []float64, period int) (trend, seasonal, resid []float64, err error) {
	if period < 2 {
		return nil, nil, nil, fmt.Errorf("restock period must be >= 2, got %d", period)
	}
	if len(series) < 2*period {
		return nil, nil, nil, fmt.Errorf("need at least %d points for period %d, got %d", 2*period, period, len(series))
	}

	width := period
	if width%2 == 0 { //Loess window must be odd
		width++
	}

	res := stl.Decompose(series, period, width, stl.Additive(), stl.WithIter(2))
	if res.Err != nil {
		return nil, nil, nil, fmt.Errorf("stl decomposition: %w", res.Err)
	}
	return res.Trend, res.Seasonal, res.Resid, nil
}

// ResidualStability reports the residual coefficient of variation as a
// percentage; low values mean the restock cycle explains the series.
func ResidualStability(resid []float64) float64 {
	mean, std := SpendTrend(resid)
	if mean == 0 {
		return 0
	}
	cv := std / mean
	if cv < 0 {
		cv = -cv
	}
	return cv * 100
}
