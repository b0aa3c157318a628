package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klokku/productivity/internal/config"
	"github.com/klokku/productivity/internal/test_utils"
	"github.com/klokku/productivity/pkg/report"
	"github.com/klokku/productivity/pkg/stats"
	"github.com/klokku/productivity/pkg/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(cfg config.Report) *Generator {
	return NewGenerator(
		cfg,
		stats.NewStatsServiceImpl(task.NewCsvReader()),
		report.NewHtmlReportRenderer(),
		report.NewBarChartRenderer(report.ChartOptions{Width: 640, Height: 400, BarWidth: 60}),
	)
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Report{
		Input:  filepath.Join(dir, "tasks.csv"),
		Output: filepath.Join(dir, report.FileName),
		Chart:  filepath.Join(dir, "category_duration.png"),
	}
	require.NoError(t, os.WriteFile(cfg.Input, []byte(test_utils.SampleTaskLog), 0o600))

	summary, err := newGenerator(cfg).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 9, summary.PeakHour)
	content, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Total Productive Time: 1.50 hours")
	assert.Contains(t, string(content), "Total Non-Productive Time: 0.50 hours")
	chart, err := os.ReadFile(cfg.Chart)
	require.NoError(t, err)
	assert.NotEmpty(t, chart)
}

func TestGenerator_Run_WithoutChart(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Report{
		Input:  filepath.Join(dir, "tasks.csv"),
		Output: filepath.Join(dir, report.FileName),
	}
	require.NoError(t, os.WriteFile(cfg.Input, []byte(test_utils.SampleTaskLog), 0o600))

	_, err := newGenerator(cfg).Run(context.Background())

	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGenerator_Run_EmptyLogWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Report{
		Input:  filepath.Join(dir, "tasks.csv"),
		Output: filepath.Join(dir, report.FileName),
	}
	require.NoError(t, os.WriteFile(cfg.Input, []byte("Task Name,Start Time,End Time\n"), 0o600))

	_, err := newGenerator(cfg).Run(context.Background())

	assert.ErrorIs(t, err, stats.ErrEmptyDataset)
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerator_Run_MissingInput(t *testing.T) {
	cfg := config.Report{Input: filepath.Join(t.TempDir(), "missing.csv"), Output: "unused.html"}

	_, err := newGenerator(cfg).Run(context.Background())

	assert.ErrorIs(t, err, os.ErrNotExist)
}
