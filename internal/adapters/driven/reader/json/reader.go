package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// jsonAPI is used wherever a full document is unmarshalled.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// streamBufSize is the jsoniter read buffer for streamed documents.
const streamBufSize = 64 * 1024

// Ensure Factory implements the interface.
var _ driven.ReaderFactory = (*Factory)(nil)

// Factory opens item iterators over one field of a JSON document.
type Factory struct {
	// Buffered forces full-document parsing even when streaming would work.
	Buffered bool
}

// Open returns an iterator over the string array at the named top-level
// field. Streaming is attempted first; if it cannot even begin (the file's
// top level is not an object), Open falls back to the buffered reader
// deterministically. Parse failures past that point surface from Next and
// must abort the run.
func (f *Factory) Open(path, field string) (driven.ItemIterator, error) {
	if f.Buffered {
		return newBuffered(path, field)
	}

	it, err := newStream(path, field)
	if err != nil {
		logger.Debug("Streaming unavailable for %s: %v; falling back to buffered read", path, err)
		return newBuffered(path, field)
	}
	return it, nil
}
