package driving

import "context"

// KeyDump is one key's rendered state: its name, structural type, and a
// type-appropriate value (string, []string, or map[string]string).
type KeyDump struct {
	Key   string
	Type  string
	Value any
}

// Inspector enumerates every key in the store for diagnostics.
type Inspector interface {
	// DumpAll returns all keys sorted by name, each with its type and value.
	// Keys of unsupported types are included with a nil Value.
	DumpAll(ctx context.Context) ([]KeyDump, error)
}
