package json

import (
	"fmt"
	"os"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
)

// Ensure Counter implements the interface.
var _ driving.Counter = (*Counter)(nil)

// Counter reports the number of top-level JSON objects in a file.
// It parses the whole document; the files it diagnoses are assumed small.
type Counter struct{}

// Count returns the element count of a top-level array, 1 for a top-level
// object, and 0 for anything else. Read and parse failures return 0 with
// the error so the caller can report it without failing.
func (Counter) Count(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	var doc any
	if err := jsonAPI.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, path, err)
	}

	switch v := doc.(type) {
	case []any:
		return len(v), nil
	case map[string]any:
		return 1, nil
	default:
		return 0, nil
	}
}
