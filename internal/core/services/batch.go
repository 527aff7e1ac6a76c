package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

// Batcher groups an item sequence into fixed-size chunks so each chunk can
// be written to the store in a single round-trip. It consumes the source
// lazily: no chunk is read before the previous one is taken.
type Batcher struct {
	it   driven.ItemIterator
	size int
	done bool
}

// NewBatcher wraps it into chunks of up to size items.
// A size below 1 is a configuration error.
func NewBatcher(it driven.ItemIterator, size int) (*Batcher, error) {
	if size < 1 {
		return nil, fmt.Errorf("chunk size %d: %w", size, domain.ErrInvalidChunkSize)
	}
	return &Batcher{it: it, size: size}, nil
}

// Next returns the next chunk. The final chunk may hold fewer than size
// items; io.EOF follows once the source is exhausted. A source error ends
// the batcher and is returned as-is.
func (b *Batcher) Next() ([]string, error) {
	if b.done {
		return nil, io.EOF
	}

	batch := make([]string, 0, b.size)
	for len(batch) < b.size {
		item, err := b.it.Next()
		if errors.Is(err, io.EOF) {
			b.done = true
			if len(batch) == 0 {
				return nil, io.EOF
			}
			return batch, nil
		}
		if err != nil {
			b.done = true
			return nil, err
		}
		batch = append(batch, item)
	}
	return batch, nil
}
