package services

import (
	"errors"
	"io"

	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

// errBoom is the injected failure for iterator error paths.
var errBoom = errors.New("boom")

// sliceIter yields a fixed slice of items. When failAfter is non-negative,
// Next fails once that many items have been yielded.
type sliceIter struct {
	items     []string
	pos       int
	failAfter int
	closed    bool
}

func newSliceIter(items ...string) *sliceIter {
	return &sliceIter{items: items, failAfter: -1}
}

func (s *sliceIter) Next() (string, error) {
	if s.failAfter >= 0 && s.pos == s.failAfter {
		return "", errBoom
	}
	if s.pos >= len(s.items) {
		return "", io.EOF
	}
	v := s.items[s.pos]
	s.pos++
	return v, nil
}

func (s *sliceIter) Close() error {
	s.closed = true
	return nil
}

// mapReaderFactory serves document fields from memory, so orchestration
// tests run without files.
type mapReaderFactory struct {
	doc map[string][]string
}

func (f *mapReaderFactory) Open(_, field string) (driven.ItemIterator, error) {
	return newSliceIter(f.doc[field]...), nil
}
