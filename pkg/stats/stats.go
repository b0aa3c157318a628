package stats

import (
	"cmp"
	"errors"
	"slices"

	"github.com/klokku/productivity/pkg/task"
)

// ErrEmptyDataset is returned when the task log has no rows, so there is no
// peak or trough hour to report.
var ErrEmptyDataset = errors.New("task log contains no tasks")

type CategoryStats struct {
	Category task.Category
	Hours    float64
}

type HourlyStats struct {
	Hour  int
	Hours float64
}

type StatsSummary struct {
	ProductiveHours    float64
	NonProductiveHours float64
	PeakHour           int
	PeakHours          float64
	TroughHour         int
	TroughHours        float64
}

// Analysis is everything derived from a single task log.
type Analysis struct {
	Records    []task.EnrichedRecord
	ByCategory []CategoryStats
	ByHour     []HourlyStats
	TotalHours float64
	Summary    StatsSummary
}

// AggregateByCategory sums durations per category. Only categories present in
// the records are returned, ordered by category name.
func AggregateByCategory(records []task.EnrichedRecord) []CategoryStats {
	sums := map[task.Category]float64{}
	for _, record := range records {
		sums[record.Category] += record.DurationHours
	}
	byCategory := make([]CategoryStats, 0, len(sums))
	for category, hours := range sums {
		byCategory = append(byCategory, CategoryStats{Category: category, Hours: hours})
	}
	slices.SortFunc(byCategory, func(a, b CategoryStats) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return byCategory
}

// AggregateByHour sums durations per start hour, ascending by hour.
func AggregateByHour(records []task.EnrichedRecord) []HourlyStats {
	sums := map[int]float64{}
	for _, record := range records {
		sums[record.StartHour] += record.DurationHours
	}
	byHour := make([]HourlyStats, 0, len(sums))
	for hour, hours := range sums {
		byHour = append(byHour, HourlyStats{Hour: hour, Hours: hours})
	}
	sortByHour(byHour)
	return byHour
}

// Summarize reduces the aggregates to the report values. Hours are scanned in
// ascending order and the first strict maximum/minimum wins.
func Summarize(byCategory []CategoryStats, byHour []HourlyStats) (StatsSummary, error) {
	if len(byHour) == 0 {
		return StatsSummary{}, ErrEmptyDataset
	}

	summary := StatsSummary{}
	for _, categoryStats := range byCategory {
		switch categoryStats.Category {
		case task.Work:
			summary.ProductiveHours += categoryStats.Hours
		case task.Break, task.Entertainment:
			summary.NonProductiveHours += categoryStats.Hours
		}
	}

	hours := slices.Clone(byHour)
	sortByHour(hours)
	peak, trough := hours[0], hours[0]
	for _, hourStats := range hours[1:] {
		if hourStats.Hours > peak.Hours {
			peak = hourStats
		}
		if hourStats.Hours < trough.Hours {
			trough = hourStats
		}
	}
	summary.PeakHour, summary.PeakHours = peak.Hour, peak.Hours
	summary.TroughHour, summary.TroughHours = trough.Hour, trough.Hours

	return summary, nil
}

func sortByHour(byHour []HourlyStats) {
	slices.SortStableFunc(byHour, func(a, b HourlyStats) int {
		return cmp.Compare(a.Hour, b.Hour)
	})
}
