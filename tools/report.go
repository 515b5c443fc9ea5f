package tools

/*
Renders a cumulative spend chart from stored round records.
*/

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderSpendChart draws cumulative coins spent over rounds to a PNG.
func RenderSpendChart(stats []RoundStat, path string) error {
	if len(stats) == 0 {
		return fmt.Errorf("no round records to chart")
	}

	points := make(plotter.XYs, len(stats))
	total := 0
	for i, stat := range stats {
		total += stat.Spent
		points[i].X = float64(i + 1)
		points[i].Y = float64(total)
	}

	p := plot.New()
	p.Title.Text = "Cumulative Spend"
	p.X.Label.Text = "Round"
	p.Y.Label.Text = "Coins"

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("build spend line: %w", err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
