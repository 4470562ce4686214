package lintreport

import (
	"errors"
	"fmt"
)

// ErrNoFindingsDocument is returned when a findings document holds no data at all
var ErrNoFindingsDocument = errors.New("empty findings document")

// DocumentError is used when a findings document cannot be decoded
type DocumentError struct {
	Source string
	Err    error
}

// NewDocumentError creates DocumentError object
func NewDocumentError(source string, err error) *DocumentError {
	return &DocumentError{
		Source: source,
		Err:    err,
	}
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("findings document %s: %v", e.Source, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
