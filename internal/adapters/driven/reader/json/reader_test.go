package json

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func drain(t *testing.T, it driven.ItemIterator) []string {
	t.Helper()
	defer it.Close()

	var out []string
	for {
		v, err := it.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, v)
	}
}

const sampleDoc = `{
	"institution": ["A", "B"],
	"degree": ["BSc"],
	"companies": ["B", "C", "C"],
	"extra": {"nested": [1, 2]}
}`

func TestFactory_StreamingAndBufferedAgree(t *testing.T) {
	path := writeFile(t, sampleDoc)

	for _, field := range []string{"institution", "degree", "companies", "missing"} {
		streaming := &Factory{}
		buffered := &Factory{Buffered: true}

		sIt, err := streaming.Open(path, field)
		require.NoError(t, err)
		bIt, err := buffered.Open(path, field)
		require.NoError(t, err)

		assert.Equal(t, drain(t, bIt), drain(t, sIt), "field %s", field)
	}
}

func TestFactory_Streaming_YieldsFieldItems(t *testing.T) {
	path := writeFile(t, sampleDoc)

	it, err := (&Factory{}).Open(path, "companies")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "C"}, drain(t, it))
}

func TestFactory_MissingFieldYieldsNothing(t *testing.T) {
	path := writeFile(t, sampleDoc)

	it, err := (&Factory{}).Open(path, "role")
	require.NoError(t, err)
	assert.Empty(t, drain(t, it))
}

func TestFactory_TopLevelArrayFallsBackToBuffered(t *testing.T) {
	// Streaming cannot begin on a top-level array; the factory falls back
	// and the buffered reader yields an empty sequence.
	path := writeFile(t, `["A", "B"]`)

	it, err := (&Factory{}).Open(path, "companies")
	require.NoError(t, err)
	assert.Empty(t, drain(t, it))
}

func TestFactory_NonArrayFieldYieldsNothing(t *testing.T) {
	path := writeFile(t, `{"companies": "not-an-array", "other": 1}`)

	for _, f := range []*Factory{{}, {Buffered: true}} {
		it, err := f.Open(path, "companies")
		require.NoError(t, err)
		assert.Empty(t, drain(t, it))
	}
}

func TestFactory_NonStringElementsSkipped(t *testing.T) {
	path := writeFile(t, `{"companies": ["A", 7, null, "B"]}`)

	for _, f := range []*Factory{{}, {Buffered: true}} {
		it, err := f.Open(path, "companies")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, drain(t, it))
	}
}

func TestFactory_Buffered_MalformedJSONFailsOpen(t *testing.T) {
	path := writeFile(t, `{"companies": ["A",`)

	_, err := (&Factory{Buffered: true}).Open(path, "companies")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFactory_Streaming_TruncatedDocumentFailsMidIteration(t *testing.T) {
	path := writeFile(t, `{"companies": ["A", "B"`)

	it, err := (&Factory{}).Open(path, "companies")
	require.NoError(t, err)
	defer it.Close()

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "B", v)

	// The cut-off is an error, never a clean end of data.
	_, err = it.Next()
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFactory_Streaming_GarbageFailsMidIteration(t *testing.T) {
	path := writeFile(t, `{"companies": ["A", not-json]}`)

	it, err := (&Factory{}).Open(path, "companies")
	require.NoError(t, err)
	defer it.Close()

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", v)

	_, err = it.Next()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFactory_MissingFileFails(t *testing.T) {
	for _, f := range []*Factory{{}, {Buffered: true}} {
		_, err := f.Open(filepath.Join(t.TempDir(), "absent.json"), "companies")
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}

func TestFactory_ReopenRestartsSequence(t *testing.T) {
	path := writeFile(t, sampleDoc)
	f := &Factory{}

	first, err := f.Open(path, "institution")
	require.NoError(t, err)
	second, err := f.Open(path, "institution")
	require.NoError(t, err)

	assert.Equal(t, drain(t, first), drain(t, second))
}
