package app

import (
	"github.com/klokku/productivity/internal/config"
	"github.com/klokku/productivity/pkg/report"
	"github.com/klokku/productivity/pkg/stats"
	"github.com/klokku/productivity/pkg/task"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	TaskReader task.Reader

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	StatsHandler     *stats.StatsHandler

	ReportRenderer *report.HtmlReportRendererImpl
	ChartRenderer  *report.BarChartRendererImpl
	ReportHandler  *report.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.TaskReader = task.NewCsvReader()

	deps.StatsService = stats.NewStatsServiceImpl(deps.TaskReader)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer, cfg.Upload.MaxBytes)

	deps.ReportRenderer = report.NewHtmlReportRenderer()
	deps.ChartRenderer = report.NewBarChartRenderer(ChartOptions(cfg.Chart))
	deps.ReportHandler = report.NewHandler(deps.StatsService, deps.ReportRenderer, deps.ChartRenderer, cfg.Upload.MaxBytes)

	return deps
}

func ChartOptions(cfg config.Chart) report.ChartOptions {
	return report.ChartOptions{
		Width:    cfg.Width,
		Height:   cfg.Height,
		BarWidth: cfg.BarWidth,
	}
}
