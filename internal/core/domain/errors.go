package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested key does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a source file could not be parsed as JSON.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChunkSize indicates a batch size below 1 was requested.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrMissingConfig indicates a required connection parameter is absent
	// from the environment.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrTruncatedStream indicates a streamed document ended mid-value.
	// Callers must treat it as a failed read, not as end of data.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrUnsupportedType indicates a store key holds a structure the
	// inspector cannot render.
	ErrUnsupportedType = errors.New("unsupported type")
)
