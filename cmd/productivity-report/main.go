package main

import (
	"context"
	"errors"

	"github.com/klokku/productivity/internal/app"
	"github.com/klokku/productivity/internal/cli"
	"github.com/klokku/productivity/internal/config"
	"github.com/klokku/productivity/pkg/report"
	"github.com/klokku/productivity/pkg/stats"
	"github.com/klokku/productivity/pkg/task"
	log "github.com/sirupsen/logrus"
)

func init() {
	if err := app.SetupLogLevel(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	generator := cli.NewGenerator(
		cfg.Report,
		stats.NewStatsServiceImpl(task.NewCsvReader()),
		report.NewHtmlReportRenderer(),
		report.NewBarChartRenderer(app.ChartOptions(cfg.Chart)),
	)
	if _, err := generator.Run(context.Background()); err != nil {
		var parseErr *task.ParseError
		switch {
		case errors.As(err, &parseErr):
			log.Fatalf("Cannot read %s: %v", cfg.Report.Input, parseErr)
		case errors.Is(err, stats.ErrEmptyDataset):
			log.Fatalf("%s has no tasks to analyse", cfg.Report.Input)
		default:
			log.Fatal(err)
		}
	}
}
