package task

import "fmt"

// ParseError reports a task log that cannot be read: a missing required
// column, a malformed row or an unparseable timestamp.
type ParseError struct {
	Line   int // 1-based, 0 when the error is not tied to a row
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0 && e.Column != "":
		return fmt.Sprintf("invalid task log: column %q: %v", e.Column, e.Err)
	case e.Line == 0:
		return fmt.Sprintf("invalid task log: %v", e.Err)
	case e.Column != "":
		return fmt.Sprintf("invalid task log: line %d, column %q, value %q: %v", e.Line, e.Column, e.Value, e.Err)
	default:
		return fmt.Sprintf("invalid task log: line %d: %v", e.Line, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
