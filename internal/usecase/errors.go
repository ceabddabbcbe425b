package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a comic id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoMatch is returned when the catalog search yields zero results.
	ErrNoMatch = errors.New("no matching comic found")

	// ErrNoCover is returned when the best catalog match has no cover image.
	ErrNoCover = errors.New("no cover image available")

	// ErrImageTooLarge is returned when a cover download exceeds the
	// payload cap before anything is written to storage.
	ErrImageTooLarge = errors.New("image too large")
)

// ConfigError reports a missing process-level credential or setting.
// Absence of an API key is an operator problem, not a client one.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Missing)
}

// UpstreamError wraps a failure from a third-party API.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// PersistError wraps a failed write to the database or object storage.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
