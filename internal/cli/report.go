package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/klokku/productivity/internal/config"
	"github.com/klokku/productivity/pkg/report"
	"github.com/klokku/productivity/pkg/stats"
	log "github.com/sirupsen/logrus"
)

// Generator reads a task log from disk and writes the HTML report and chart
// next to it.
type Generator struct {
	cfg            config.Report
	statsService   stats.StatsService
	reportRenderer report.ReportRenderer
	chartRenderer  report.ChartRenderer
}

func NewGenerator(
	cfg config.Report,
	statsService stats.StatsService,
	reportRenderer report.ReportRenderer,
	chartRenderer report.ChartRenderer,
) *Generator {
	return &Generator{
		cfg:            cfg,
		statsService:   statsService,
		reportRenderer: reportRenderer,
		chartRenderer:  chartRenderer,
	}
}

// Run analyses the configured input and returns the summary that was written.
func (g *Generator) Run(ctx context.Context) (stats.StatsSummary, error) {
	input, err := os.Open(g.cfg.Input)
	if err != nil {
		return stats.StatsSummary{}, fmt.Errorf("failed to open task log: %w", err)
	}
	defer input.Close()

	analysis, err := g.statsService.Analyze(ctx, input)
	if err != nil {
		return stats.StatsSummary{}, err
	}
	for _, line := range report.SummaryLines(analysis.Summary) {
		log.Info(line)
	}

	if g.cfg.Chart != "" {
		chart, err := g.chartRenderer.RenderChart(analysis.ByCategory, report.ChartPNG)
		if err != nil {
			return stats.StatsSummary{}, err
		}
		if err := os.WriteFile(g.cfg.Chart, chart, 0o644); err != nil {
			return stats.StatsSummary{}, fmt.Errorf("failed to write chart: %w", err)
		}
		log.Infof("Chart written to %s", g.cfg.Chart)
	}

	content := g.reportRenderer.RenderReport(analysis.Summary)
	if err := os.WriteFile(g.cfg.Output, []byte(content), 0o644); err != nil {
		return stats.StatsSummary{}, fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("Report written to %s", g.cfg.Output)

	return analysis.Summary, nil
}
