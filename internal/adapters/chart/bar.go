package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kamal-hamza/hb-cli/internal/core/services"
)

// BarChart writes catalog statistics as a standalone echarts HTML page
type BarChart struct {
	Title    string
	Subtitle string
}

// NewBarChart creates a bar chart writer
func NewBarChart(title, subtitle string) *BarChart {
	return &BarChart{
		Title:    title,
		Subtitle: subtitle,
	}
}

// Write renders one bar per stat in the given order
func (c *BarChart) Write(w io.Writer, series string, stats []services.Stat) error {
	labels := make([]string, 0, len(stats))
	values := make([]opts.BarData, 0, len(stats))
	for _, s := range stats {
		labels = append(labels, s.Label)
		values = append(values, opts.BarData{Value: s.Target})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: c.Subtitle,
		}),
	)
	bar.SetXAxis(labels).AddSeries(series, values)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
