// internal/render/chart.go
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/circuitdiff/internal/diff"
)

// Chart writes a PNG bar chart of the percentage change per changed metric.
// Rows without a computable change are left out; an error is returned when no
// row is chartable at all.
func Chart(rows []diff.Row, path string) error {
	var values plotter.Values
	var labels []string
	for _, row := range rows {
		change, ok := row.PercentValue()
		if !ok {
			continue
		}
		values = append(values, change)
		labels = append(labels, row.Circuit+" "+row.Metric)
	}
	if len(values) == 0 {
		return fmt.Errorf("no numeric changes to chart")
	}

	p := plot.New()
	p.Title.Text = "Metric change vs main branch"
	p.Y.Label.Text = "% change"
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.9

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	width := vg.Points(float64(len(values))*40 + 160)
	return p.Save(width, 10*vg.Centimeter, path)
}
