// Package memory provides an in-memory implementation of the driven.Store
// port. It backs service and CLI tests so the load logic runs without a
// live Redis.
package memory

import (
	"context"
	"path"
	"sync"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Store = (*Store)(nil)

// Store is an in-memory key-value store with typed values, so Type reports
// the same structural kinds Redis would.
type Store struct {
	mu      sync.RWMutex
	strings map[string]string
	lists   map[string][]string
	sets    map[string]map[string]struct{}
	hashes  map[string]map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		strings: make(map[string]string),
		lists:   make(map[string][]string),
		sets:    make(map[string]map[string]struct{}),
		hashes:  make(map[string]map[string]string),
	}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Del removes the given keys from every structure.
func (s *Store) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.strings, key)
		delete(s.lists, key)
		delete(s.sets, key)
		delete(s.hashes, key)
	}
	return nil
}

// RPush appends values to the list at key.
func (s *Store) RPush(_ context.Context, key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append(s.lists[key], values...)
	return nil
}

// SAddEach adds members to the set at key, reporting per member whether it
// was newly added. Duplicates within one call are added on first position
// only, matching pipelined SADD semantics.
func (s *Store) SAddEach(_ context.Context, key string, members []string) ([]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[key]
	if !ok {
		set = make(map[string]struct{})
		s.sets[key] = set
	}

	added := make([]bool, len(members))
	for i, m := range members {
		if _, exists := set[m]; !exists {
			set[m] = struct{}{}
			added[i] = true
		}
	}
	return added, nil
}

// Set stores a plain string value. Not part of the port; used to seed tests.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings[key] = value
}

// HSet stores a hash value. Not part of the port; used to seed tests.
func (s *Store) HSet(key string, fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[key] = fields
}

// Get returns the string value at key.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.strings[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// LRange returns a copy of the list at key.
func (s *Store) LRange(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.lists[key]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// LLen returns the length of the list at key.
func (s *Store) LLen(_ context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.lists[key])), nil
}

// SMembers returns the members of the set at key.
func (s *Store) SMembers(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.sets[key]
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	return out, nil
}

// HGetAll returns a copy of the hash at key.
func (s *Store) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.hashes[key]))
	for k, v := range s.hashes[key] {
		out[k] = v
	}
	return out, nil
}

// Type reports the structural type holding key, or "none".
func (s *Store) Type(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case hasKey(s.strings, key):
		return "string", nil
	case hasKey(s.lists, key):
		return "list", nil
	case hasKey(s.sets, key):
		return "set", nil
	case hasKey(s.hashes, key):
		return "hash", nil
	default:
		return "none", nil
	}
}

// Keys returns all keys matching the glob pattern.
func (s *Store) Keys(_ context.Context, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k := range s.strings {
		keys = appendMatch(keys, pattern, k)
	}
	for k := range s.lists {
		keys = appendMatch(keys, pattern, k)
	}
	for k := range s.sets {
		keys = appendMatch(keys, pattern, k)
	}
	for k := range s.hashes {
		keys = appendMatch(keys, pattern, k)
	}
	return keys, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func hasKey[V any](m map[string]V, key string) bool {
	_, ok := m[key]
	return ok
}

func appendMatch(keys []string, pattern, key string) []string {
	if ok, err := path.Match(pattern, key); err == nil && ok {
		return append(keys, key)
	}
	return keys
}
