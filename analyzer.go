package main

import (
	"github.com/sirupsen/logrus"

	"github.com/jqcwhw/ps99stuff/tools"
)

/*
Analyzes stored round records: spend trend statistics, per-round
z-score anomalies, and STL decomposition of the hatch series to surface
shop restock cycles.
*/

// AnalyzeSpendTrend prints summary statistics over the spend series and
// flags rounds whose spend sits more than two standard deviations out.
func AnalyzeSpendTrend(roundsFile string, lookback int) error {
	stats, err := tools.RetrieveRounds(roundsFile)
	if err != nil {
		return err
	}
	if len(stats) > lookback {
		stats = stats[len(stats)-lookback:]
	}

	series := make([]float64, len(stats))
	for i, stat := range stats {
		series[i] = float64(stat.Spent)
	}

	mean, std := tools.SpendTrend(series)
	logrus.Infof("Spend trend over %d rounds | Mean: %.1f | SD: %.1f", len(series), mean, std)

	for _, stat := range stats {
		z := tools.ZScore(float64(stat.Spent), series)
		if z >= 2 || z <= -2 {
			logrus.Infof("Anomalous round %s | Spent: %d | Z-Score: %.2f", stat.ID, stat.Spent, z)
		}
	}
	return nil
}

// AnalyzeRestockCycle decomposes the eggs-per-round series at the
// given periodicity and reports how much of the series the cycle
// explains.
func AnalyzeRestockCycle(roundsFile string, period int) error {
	stats, err := tools.RetrieveRounds(roundsFile)
	if err != nil {
		return err
	}

	series := make([]float64, len(stats))
	for i, stat := range stats {
		series[i] = float64(stat.Eggs)
	}

	trend, seasonal, resid, err := tools.DecomposeRestockCycle(series, period)
	if err != nil {
		return err
	}

	//Find the cycle offset where the most eggs show up
	peak := 0
	for i := 1; i < period && i < len(seasonal); i++ {
		if seasonal[i] > seasonal[peak] {
			peak = i
		}
	}

	logrus.Infof("Restock cycle (period %d) | Peak offset: %d | Stability (Resid. %%CV): %.1f",
		period, peak, tools.ResidualStability(resid))
	logrus.Infof("Trend endpoint: %.2f eggs/round (started at %.2f)", trend[len(trend)-1], trend[0])
	return nil
}
