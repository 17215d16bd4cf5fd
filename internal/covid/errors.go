package covid

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode categorizes errors produced while loading or querying a dataset.
type ErrorCode string

const (
	// ErrCodeDataAccess indicates the source could not be located or opened.
	ErrCodeDataAccess ErrorCode = "E_DATA_ACCESS"

	// ErrCodeRead indicates an I/O or tokenization fault while reading.
	ErrCodeRead ErrorCode = "E_READ"

	// ErrCodeMalformedRow indicates a row is too short for the column layout.
	ErrCodeMalformedRow ErrorCode = "E_MALFORMED_ROW"

	// ErrCodeEmptyDataset indicates a query that needs a record found none.
	ErrCodeEmptyDataset ErrorCode = "E_EMPTY_DATASET"
)

// DataAccessError is returned when a source cannot be located or opened.
type DataAccessError struct {
	Source string
	Err    error
}

func (e *DataAccessError) Error() string {
	if e.Err == nil || errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("File %s not found", e.Source)
	}
	return fmt.Sprintf("File %s cannot be opened: %v", e.Source, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// Code returns ErrCodeDataAccess.
func (e *DataAccessError) Code() ErrorCode { return ErrCodeDataAccess }

// ReadError wraps a failure that happened after the source was opened.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Unable to read source data file %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Code returns ErrCodeRead.
func (e *ReadError) Code() ErrorCode { return ErrCodeRead }

// MalformedRowError reports a data row with fewer than MinFields fields.
// Line is 1-based and refers to the physical line the row starts on.
type MalformedRowError struct {
	Source string
	Line   int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: row has %d fields, need at least %d", e.Source, e.Line, e.Fields, MinFields)
}

// Code returns ErrCodeMalformedRow.
func (e *MalformedRowError) Code() ErrorCode { return ErrCodeMalformedRow }

// EmptyDatasetError is returned by queries that need at least one record.
type EmptyDatasetError struct {
	Source string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("Country not found with highest number of deaths: %s has no records", e.Source)
}

// Code returns ErrCodeEmptyDataset.
func (e *EmptyDatasetError) Code() ErrorCode { return ErrCodeEmptyDataset }

// codedError is implemented by every error type in this package.
type codedError interface {
	error
	Code() ErrorCode
}

// CodeOf returns the ErrorCode carried by err or any error it wraps.
// Returns the empty code if err did not originate in this package.
func CodeOf(err error) ErrorCode {
	var ce codedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// IsDataAccessError reports whether err is or wraps a *DataAccessError.
func IsDataAccessError(err error) bool {
	var target *DataAccessError
	return errors.As(err, &target)
}

// IsReadError reports whether err is or wraps a *ReadError.
func IsReadError(err error) bool {
	var target *ReadError
	return errors.As(err, &target)
}

// IsMalformedRowError reports whether err is or wraps a *MalformedRowError.
func IsMalformedRowError(err error) bool {
	var target *MalformedRowError
	return errors.As(err, &target)
}

// IsEmptyDatasetError reports whether err is or wraps an *EmptyDatasetError.
func IsEmptyDatasetError(err error) bool {
	var target *EmptyDatasetError
	return errors.As(err, &target)
}
