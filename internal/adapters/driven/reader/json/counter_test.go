package json

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
)

func TestCounter_Count(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"array", `[1, 2, 3]`, 3},
		{"empty array", `[]`, 0},
		{"object", `{"a": 1}`, 1},
		{"string", `"hello"`, 0},
		{"number", `42`, 0},
		{"null", `null`, 0},
		{"array of objects", `[{"a":1}, {"b":2}]`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			got, err := Counter{}.Count(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounter_MalformedJSONReportsZero(t *testing.T) {
	path := writeFile(t, `{"a":`)

	got, err := Counter{}.Count(path)
	assert.Zero(t, got)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCounter_MissingFileReportsZero(t *testing.T) {
	got, err := Counter{}.Count(filepath.Join(t.TempDir(), "absent.json"))
	assert.Zero(t, got)
	assert.Error(t, err)
}
