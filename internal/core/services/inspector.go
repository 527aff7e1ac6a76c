package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
)

// Ensure Inspector implements the interface.
var _ driving.Inspector = (*Inspector)(nil)

// Inspector enumerates every key in the store with its type-appropriate value.
type Inspector struct {
	store driven.Store
}

// NewInspector creates an inspector on top of a store.
func NewInspector(store driven.Store) *Inspector {
	return &Inspector{store: store}
}

// DumpAll returns all keys sorted by name. Set members are sorted so the
// rendering is stable; lists keep their stored order. A key whose type the
// inspector does not know is returned with a nil Value rather than failing
// the whole dump.
func (i *Inspector) DumpAll(ctx context.Context) ([]driving.KeyDump, error) {
	keys, err := i.store.Keys(ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	sort.Strings(keys)

	dumps := make([]driving.KeyDump, 0, len(keys))
	for _, key := range keys {
		keyType, err := i.store.Type(ctx, key)
		if err != nil {
			return dumps, fmt.Errorf("type of %s: %w", key, err)
		}

		dump := driving.KeyDump{Key: key, Type: keyType}

		switch keyType {
		case "string":
			value, err := i.store.Get(ctx, key)
			if err != nil {
				return dumps, fmt.Errorf("get %s: %w", key, err)
			}
			dump.Value = value
		case "list":
			value, err := i.store.LRange(ctx, key)
			if err != nil {
				return dumps, fmt.Errorf("range %s: %w", key, err)
			}
			dump.Value = value
		case "set":
			members, err := i.store.SMembers(ctx, key)
			if err != nil {
				return dumps, fmt.Errorf("members %s: %w", key, err)
			}
			sort.Strings(members)
			dump.Value = members
		case "hash":
			value, err := i.store.HGetAll(ctx, key)
			if err != nil {
				return dumps, fmt.Errorf("hash %s: %w", key, err)
			}
			dump.Value = value
		default:
			// Unhandled type: include the key, leave Value nil.
		}

		dumps = append(dumps, dump)
	}
	return dumps, nil
}
