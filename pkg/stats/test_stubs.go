package stats

import (
	"context"
	"io"

	"github.com/klokku/productivity/pkg/task"
)

type taskReaderStub struct {
	records []task.TaskRecord
	err     error
	calls   int
}

func newTaskReaderStub() *taskReaderStub {
	return &taskReaderStub{}
}

func (s *taskReaderStub) Read(ctx context.Context, source io.Reader) ([]task.TaskRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *taskReaderStub) setRecords(records []task.TaskRecord) {
	s.records = records
	s.err = nil
}

func (s *taskReaderStub) setError(err error) {
	s.records = nil
	s.err = err
}

func (s *taskReaderStub) reset() {
	s.records = nil
	s.err = nil
	s.calls = 0
}
