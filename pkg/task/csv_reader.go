package task

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	ColumnTaskName  = "Task Name"
	ColumnStartTime = "Start Time"
	ColumnEndTime   = "End Time"
)

var (
	ErrMissingColumn = errors.New("required column is missing")
	ErrEmptyValue    = errors.New("value is empty")
	ErrBadTimestamp  = errors.New("unrecognized timestamp format")
)

// Layouts without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"2006/01/02 15:04",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Reader interface {
	Read(ctx context.Context, source io.Reader) ([]TaskRecord, error)
}

type CsvReaderImpl struct {
}

func NewCsvReader() *CsvReaderImpl {
	return &CsvReaderImpl{}
}

func (r *CsvReaderImpl) Read(ctx context.Context, source io.Reader) ([]TaskRecord, error) {
	reader := csv.NewReader(source)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Err: errors.New("header row is missing")}
		}
		return nil, &ParseError{Err: err}
	}
	header[0] = string(bytes.TrimPrefix([]byte(header[0]), utf8BOM))

	nameIdx, startIdx, endIdx, err := locateColumns(header)
	if err != nil {
		return nil, err
	}
	log.Tracef("Task log columns: name=%d start=%d end=%d", nameIdx, startIdx, endIdx)

	records := make([]TaskRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)

		startTime, err := parseTimestamp(row[startIdx])
		if err != nil {
			return nil, &ParseError{Line: line, Column: ColumnStartTime, Value: row[startIdx], Err: err}
		}
		endTime, err := parseTimestamp(row[endIdx])
		if err != nil {
			return nil, &ParseError{Line: line, Column: ColumnEndTime, Value: row[endIdx], Err: err}
		}
		records = append(records, TaskRecord{
			Name:      row[nameIdx],
			StartTime: startTime,
			EndTime:   endTime,
		})
	}
	log.Debugf("Read %d task records", len(records))

	return records, nil
}

func locateColumns(header []string) (int, int, int, error) {
	indexes := map[string]int{}
	for i, name := range header {
		if _, seen := indexes[name]; !seen {
			indexes[name] = i
		}
	}
	found := make([]int, 0, 3)
	for _, column := range []string{ColumnTaskName, ColumnStartTime, ColumnEndTime} {
		idx, ok := indexes[column]
		if !ok {
			return 0, 0, 0, &ParseError{Column: column, Err: ErrMissingColumn}
		}
		found = append(found, idx)
	}
	return found[0], found[1], found[2], nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyValue
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, value)
}
