package task

import (
	"strings"
	"time"
)

type Category string

const (
	Work          Category = "Work"
	Study         Category = "Study"
	Break         Category = "Break"
	Entertainment Category = "Entertainment"
)

// TaskRecord is a single row of the uploaded task log.
type TaskRecord struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
}

type EnrichedRecord struct {
	TaskRecord
	Category      Category
	DurationHours float64
	StartHour     int
}

type categoryRule struct {
	keyword  string
	category Category
}

// Checked in order, first match wins.
var categoryRules = []categoryRule{
	{"work", Work},
	{"study", Study},
	{"break", Break},
}

// Categorize assigns a category to a task name. Names matching none of the
// keywords fall back to Entertainment.
func Categorize(name string) Category {
	lowered := strings.ToLower(name)
	for _, rule := range categoryRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.category
		}
	}
	return Entertainment
}

// DurationHours returns the elapsed time in hours. End before start yields a
// negative value.
func (r TaskRecord) DurationHours() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds() / 3600
}

func Enrich(record TaskRecord) EnrichedRecord {
	return EnrichedRecord{
		TaskRecord:    record,
		Category:      Categorize(record.Name),
		DurationHours: record.DurationHours(),
		StartHour:     record.StartTime.Hour(),
	}
}

func EnrichAll(records []TaskRecord) []EnrichedRecord {
	enriched := make([]EnrichedRecord, 0, len(records))
	for _, record := range records {
		enriched = append(enriched, Enrich(record))
	}
	return enriched
}
