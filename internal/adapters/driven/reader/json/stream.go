package json

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

// Ensure streamIterator implements the interface.
var _ driven.ItemIterator = (*streamIterator)(nil)

// Iterator states.
const (
	stateSeeking = iota // scanning top-level keys for the target field
	stateInArray        // positioned inside the target array
	stateDone
)

// streamIterator walks `{field: [...]}` incrementally, one value per Next,
// skipping every other top-level field. Memory stays bounded by the read
// buffer regardless of document size.
type streamIterator struct {
	path  string
	field string
	file  *os.File
	it    *jsoniter.Iterator
	state int
}

// newStream opens path for streaming. It fails (so the factory can fall
// back) only when streaming cannot begin at all: the file cannot be opened
// or its top level is not an object.
func newStream(path, field string) (*streamIterator, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	it := jsoniter.Parse(jsoniter.ConfigDefault, file, streamBufSize)
	if it.WhatIsNext() != jsoniter.ObjectValue {
		file.Close()
		return nil, fmt.Errorf("top level of %s is not an object", path)
	}

	return &streamIterator{path: path, field: field, file: file, it: it}, nil
}

// Next yields the next string from the target array. io.EOF means the array
// (or the whole object, when the field is absent) ended cleanly; any other
// error means the document failed to parse partway through.
func (s *streamIterator) Next() (string, error) {
	for {
		switch s.state {
		case stateDone:
			return "", io.EOF

		case stateSeeking:
			name := s.it.ReadObject()
			if err := s.parseErr(); err != nil {
				return "", err
			}
			if name == "" {
				// Object ended without the field: empty sequence.
				s.state = stateDone
				continue
			}
			if name != s.field {
				s.it.Skip()
				if err := s.parseErr(); err != nil {
					return "", err
				}
				continue
			}
			if s.it.WhatIsNext() != jsoniter.ArrayValue {
				// Field present but not an array: nothing to yield.
				s.it.Skip()
				if err := s.parseErr(); err != nil {
					return "", err
				}
				s.state = stateDone
				continue
			}
			s.state = stateInArray

		case stateInArray:
			if !s.it.ReadArray() {
				if err := s.parseErr(); err != nil {
					return "", err
				}
				s.state = stateDone
				continue
			}
			if s.it.WhatIsNext() != jsoniter.StringValue {
				// Non-string element: skip it, matching the buffered reader.
				s.it.Skip()
				if err := s.parseErr(); err != nil {
					return "", err
				}
				continue
			}
			value := s.it.ReadString()
			if err := s.parseErr(); err != nil {
				return "", err
			}
			return value, nil
		}
	}
}

// Close releases the underlying file.
func (s *streamIterator) Close() error {
	s.state = stateDone
	return s.file.Close()
}

// parseErr converts the iterator's error state into a fatal read error.
// io.EOF here is NOT a clean end: the parser only records it when the
// document was cut short mid-value.
func (s *streamIterator) parseErr() error {
	err := s.it.Error
	if err == nil {
		return nil
	}
	s.state = stateDone
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, s.path, domain.ErrTruncatedStream)
	}
	return fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, s.path, err)
}
