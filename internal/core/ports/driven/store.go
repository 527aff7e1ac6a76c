package driven

import "context"

// Store exposes the key-value store operations the loaders, counter and
// inspector need. Backed by Redis in production; the memory adapter
// implements the same contract for tests.
//
// Batched writes (RPush, SAddEach) are submitted as a single round-trip to
// the store. Commands within a round-trip execute in submission order, and
// successive round-trips for a key execute in program order, so list order
// always equals write order.
type Store interface {
	// Ping verifies the connection is alive.
	Ping(ctx context.Context) error

	// Del removes the given keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error

	// RPush appends values to the list at key, in order, in one round-trip.
	RPush(ctx context.Context, key string, values []string) error

	// SAddEach adds each member to the set at key in one round-trip and
	// reports, per member, whether it was newly added. A value repeated
	// within the same call is reported as added only on its first position.
	SAddEach(ctx context.Context, key string, members []string) ([]bool, error)

	// Get returns the string value at key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// LRange returns the full contents of the list at key.
	LRange(ctx context.Context, key string) ([]string, error)

	// LLen returns the length of the list at key.
	LLen(ctx context.Context, key string) (int64, error)

	// SMembers returns the members of the set at key, in no defined order.
	SMembers(ctx context.Context, key string) ([]string, error)

	// HGetAll returns the field-value pairs of the hash at key.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Type returns the structural type of key: "string", "list", "set",
	// "hash", or "none" when the key does not exist.
	Type(ctx context.Context, key string) (string, error)

	// Keys returns all keys matching the glob pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)

	// Close releases the underlying connection.
	Close() error
}
