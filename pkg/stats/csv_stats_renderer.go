package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type StatsRenderer interface {
	RenderStats(analysis Analysis) (string, error)
}

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

// RenderStats writes the aggregates and summary as a long-format CSV:
// one row per (group, key) pair.
func (t *CsvStatsRendererImpl) RenderStats(analysis Analysis) (string, error) {
	data := make([][]string, 0, 1+len(analysis.ByCategory)+len(analysis.ByHour)+4)
	data = append(data, []string{"Group", "Key", "Duration (hours)"})

	for _, categoryStats := range analysis.ByCategory {
		data = append(data, []string{"category", string(categoryStats.Category), hoursToString(categoryStats.Hours)})
	}
	for _, hourStats := range analysis.ByHour {
		data = append(data, []string{"hour", strconv.Itoa(hourStats.Hour), hoursToString(hourStats.Hours)})
	}

	summary := analysis.Summary
	data = append(data,
		[]string{"summary", "productive", hoursToString(summary.ProductiveHours)},
		[]string{"summary", "non-productive", hoursToString(summary.NonProductiveHours)},
		[]string{"peak hour", strconv.Itoa(summary.PeakHour), hoursToString(summary.PeakHours)},
		[]string{"trough hour", strconv.Itoa(summary.TroughHour), hoursToString(summary.TroughHours)},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func hoursToString(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
