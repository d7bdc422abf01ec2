package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the inventory file does not exist.
	ErrSourceNotFound = errors.New("inventory file not found")
	// ErrMalformedRecord is returned when a line of the inventory file cannot be parsed.
	ErrMalformedRecord = errors.New("invalid data in the inventory file")
	// ErrMalformedInput is returned when a user entry cannot be converted.
	ErrMalformedInput = errors.New("invalid input")
)

// MalformedRecordError reports the line of the inventory file that could not be decoded.
type MalformedRecordError struct {
	Line int    // 1-based, the header is line 1
	Text string // raw content of the line
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }
