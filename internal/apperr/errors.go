package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIdentifier means the route gave neither a slug nor an id.
	ErrNoIdentifier = errors.New("no article identifier provided")
	// ErrNotFound means every lookup succeeded but nothing matched.
	ErrNotFound = errors.New("article not found")
	// ErrParseFailed is recovered locally by the heading extractor.
	ErrParseFailed = errors.New("article body could not be parsed")
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// FetchFailedError reports that the article source was unreachable or
// answered with a non-success status.
type FetchFailedError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchFailedError) Error() string {
	msg := "fetch from " + e.Source + " failed"
	if e.Status != 0 {
		msg += fmt.Sprintf(" with status %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchFailedError) Unwrap() error {
	return e.Err
}

func NewFetchFailed(source string, err error) *FetchFailedError {
	return &FetchFailedError{Source: source, Err: err}
}

func NewFetchFailedStatus(source string, status int) *FetchFailedError {
	return &FetchFailedError{Source: source, Status: status}
}

// IsFetchFailed reports whether err carries a FetchFailedError.
func IsFetchFailed(err error) bool {
	var fe *FetchFailedError
	return errors.As(err, &fe)
}
