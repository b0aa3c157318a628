package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/klokku/productivity/internal/metrics"
	"github.com/klokku/productivity/pkg/stats"
	log "github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type ChartFormat string

const (
	ChartPNG ChartFormat = "png"
	ChartSVG ChartFormat = "svg"
)

func (f ChartFormat) ContentType() string {
	if f == ChartSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func ParseChartFormat(value string) (ChartFormat, error) {
	switch ChartFormat(value) {
	case "", ChartPNG:
		return ChartPNG, nil
	case ChartSVG:
		return ChartSVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", value)
}

type ChartOptions struct {
	Width    int
	Height   int
	BarWidth int
}

type ChartRenderer interface {
	RenderChart(byCategory []stats.CategoryStats, format ChartFormat) ([]byte, error)
}

type BarChartRendererImpl struct {
	options ChartOptions
}

func NewBarChartRenderer(options ChartOptions) *BarChartRendererImpl {
	return &BarChartRendererImpl{options: options}
}

var barColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorOrange,
	chart.ColorGreen,
	chart.ColorRed,
}

// RenderChart draws one bar per category, in the order given.
func (r *BarChartRendererImpl) RenderChart(byCategory []stats.CategoryStats, format ChartFormat) ([]byte, error) {
	if len(byCategory) == 0 {
		return nil, stats.ErrEmptyDataset
	}

	bars := make([]chart.Value, 0, len(byCategory))
	minHours, maxHours := 0.0, 0.0
	for i, categoryStats := range byCategory {
		color := barColors[i%len(barColors)]
		bars = append(bars, chart.Value{
			Label: string(categoryStats.Category),
			Value: categoryStats.Hours,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
		minHours = math.Min(minHours, categoryStats.Hours)
		maxHours = math.Max(maxHours, categoryStats.Hours)
	}
	if maxHours == minHours {
		maxHours = minHours + 1
	}

	barChart := chart.BarChart{
		Title:      "Time Spent on Each Category",
		TitleStyle: chart.Style{FontSize: 14},
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      r.options.Width,
		Height:     r.options.Height,
		BarWidth:   r.options.BarWidth,
		XAxis:      chart.Style{StrokeWidth: 1},
		YAxis: chart.YAxis{
			Name:      "Duration (hours)",
			NameStyle: chart.Style{FontSize: 10},
			Style:     chart.Style{FontSize: 10},
			Range:     &chart.ContinuousRange{Min: minHours, Max: maxHours},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	provider := chart.PNG
	if format == ChartSVG {
		provider = chart.SVG
	}
	if err := barChart.Render(provider, &buf); err != nil {
		log.Errorf("Failed to render chart: %v", err)
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	metrics.ReportsRendered.WithLabelValues(string(format)).Inc()
	return buf.Bytes(), nil
}
