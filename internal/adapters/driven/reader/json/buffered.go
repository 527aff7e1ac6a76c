package json

import (
	"fmt"
	"io"
	"os"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

// Ensure bufferedIterator implements the interface.
var _ driven.ItemIterator = (*bufferedIterator)(nil)

// bufferedIterator iterates a field's strings after a full-document parse.
// Simple and correct for any input that fits in memory.
type bufferedIterator struct {
	items []string
	pos   int
}

// newBuffered parses the whole file and captures doc[field] when it is an
// array. A non-object document or a missing field yields an empty sequence;
// malformed JSON is an immediate error.
func newBuffered(path, field string) (*bufferedIterator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc any
	if err := jsonAPI.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, path, err)
	}

	return &bufferedIterator{items: fieldStrings(doc, field)}, nil
}

// fieldStrings pulls the string elements of doc[field]. Non-string elements
// are skipped, matching the streaming reader.
func fieldStrings(doc any, field string) []string {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := obj[field].([]any)
	if !ok {
		return nil
	}

	items := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

// Next yields the next captured string, then io.EOF.
func (b *bufferedIterator) Next() (string, error) {
	if b.pos >= len(b.items) {
		return "", io.EOF
	}
	v := b.items[b.pos]
	b.pos++
	return v, nil
}

// Close is a no-op; the file was consumed at construction.
func (b *bufferedIterator) Close() error { return nil }
