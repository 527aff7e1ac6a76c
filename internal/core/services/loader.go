package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// Loader writes item sequences into destination lists, batching every write
// into one pipelined round-trip per chunk.
type Loader struct {
	store driven.Store
}

// NewLoader creates a loader on top of a store.
func NewLoader(store driven.Store) *Loader {
	return &Loader{store: store}
}

// Reset deletes destination keys so a run starts from a clean slate.
// Run it once per run, before the first load against those keys.
func (l *Loader) Reset(ctx context.Context, keys ...string) error {
	if err := l.store.Del(ctx, keys...); err != nil {
		return fmt.Errorf("clear keys: %w", err)
	}
	return nil
}

// Load clears key and appends every item in input order, duplicates
// included. Returns the total number of items appended. Exactly one store
// key is touched.
func (l *Loader) Load(ctx context.Context, key string, it driven.ItemIterator, chunk int) (int, error) {
	if err := l.Reset(ctx, key); err != nil {
		return 0, err
	}

	batcher, err := NewBatcher(it, chunk)
	if err != nil {
		return 0, err
	}

	total := 0
	for {
		batch, err := batcher.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read items: %w", err)
		}

		if err := l.store.RPush(ctx, key, batch); err != nil {
			return total, fmt.Errorf("push %s: %w", key, err)
		}
		total += len(batch)
		logger.Debug("Appended %d items to %s (total %d)", len(batch), key, total)
	}
	return total, nil
}

// LoadDeduped appends to listKey exactly those items not yet recorded in the
// membership set at setKey, preserving first-occurrence order, and records
// them. Deduplication spans batches and successive calls against the same
// key pair, so merging several inputs into one destination is just several
// calls. Returns the count of newly added items for this call.
//
// LoadDeduped does not clear the keys; call Reset once at run start so a
// second input can be merged into the same destination.
func (l *Loader) LoadDeduped(ctx context.Context, listKey, setKey string, it driven.ItemIterator, chunk int) (int, error) {
	batcher, err := NewBatcher(it, chunk)
	if err != nil {
		return 0, err
	}

	total := 0
	for {
		batch, err := batcher.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read items: %w", err)
		}

		added, err := l.store.SAddEach(ctx, setKey, batch)
		if err != nil {
			return total, fmt.Errorf("record members %s: %w", setKey, err)
		}

		// Keep only first occurrences, relative order intact.
		fresh := batch[:0:0]
		for i, item := range batch {
			if added[i] {
				fresh = append(fresh, item)
			}
		}
		if len(fresh) == 0 {
			continue
		}

		if err := l.store.RPush(ctx, listKey, fresh); err != nil {
			return total, fmt.Errorf("push %s: %w", listKey, err)
		}
		total += len(fresh)
		logger.Debug("Appended %d new items to %s (total %d)", len(fresh), listKey, total)
	}
	return total, nil
}

// Len returns the current length of a destination list.
func (l *Loader) Len(ctx context.Context, key string) (int64, error) {
	n, err := l.store.LLen(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("length of %s: %w", key, err)
	}
	return n, nil
}
