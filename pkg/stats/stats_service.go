package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klokku/productivity/internal/metrics"
	"github.com/klokku/productivity/pkg/task"
	log "github.com/sirupsen/logrus"
)

type StatsService interface {
	Analyze(ctx context.Context, source io.Reader) (Analysis, error)
}

type StatsServiceImpl struct {
	reader task.Reader
}

func NewStatsServiceImpl(reader task.Reader) *StatsServiceImpl {
	return &StatsServiceImpl{
		reader: reader,
	}
}

// Analyze runs the whole pipeline over a CSV task log: parse, categorize,
// aggregate and summarize.
func (s *StatsServiceImpl) Analyze(ctx context.Context, source io.Reader) (Analysis, error) {
	started := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	}()

	records, err := s.reader.Read(ctx, source)
	if err != nil {
		var parseErr *task.ParseError
		if errors.As(err, &parseErr) {
			metrics.AnalysesTotal.WithLabelValues(metrics.ResultParseError).Inc()
		} else {
			metrics.AnalysesTotal.WithLabelValues(metrics.ResultError).Inc()
		}
		return Analysis{}, fmt.Errorf("failed to read task log: %w", err)
	}

	analysis, err := AnalyzeRecords(records)
	if err != nil {
		if errors.Is(err, ErrEmptyDataset) {
			metrics.AnalysesTotal.WithLabelValues(metrics.ResultEmpty).Inc()
		} else {
			metrics.AnalysesTotal.WithLabelValues(metrics.ResultError).Inc()
		}
		return Analysis{}, err
	}

	for _, record := range analysis.Records {
		metrics.TasksProcessed.WithLabelValues(string(record.Category)).Inc()
	}
	metrics.AnalysesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Debugf("Analysed %d tasks: productive=%.2f non-productive=%.2f peak=%d trough=%d",
		len(analysis.Records),
		analysis.Summary.ProductiveHours,
		analysis.Summary.NonProductiveHours,
		analysis.Summary.PeakHour,
		analysis.Summary.TroughHour,
	)

	return analysis, nil
}

// AnalyzeRecords derives the aggregates and summary from already parsed records.
func AnalyzeRecords(records []task.TaskRecord) (Analysis, error) {
	if len(records) == 0 {
		return Analysis{}, ErrEmptyDataset
	}

	enriched := task.EnrichAll(records)
	byCategory := AggregateByCategory(enriched)
	byHour := AggregateByHour(enriched)
	log.Tracef("By category: %v", byCategory)
	log.Tracef("By hour: %v", byHour)

	summary, err := Summarize(byCategory, byHour)
	if err != nil {
		return Analysis{}, err
	}

	totalHours := 0.0
	for _, record := range enriched {
		totalHours += record.DurationHours
	}

	return Analysis{
		Records:    enriched,
		ByCategory: byCategory,
		ByHour:     byHour,
		TotalHours: totalHours,
		Summary:    summary,
	}, nil
}
