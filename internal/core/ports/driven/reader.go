package driven

// ItemIterator is a lazy sequence of strings read from a source document.
//
// Next returns io.EOF once the sequence is cleanly exhausted. Any other
// error means the read failed partway through; callers must abort the run
// rather than treat the sequence as complete.
type ItemIterator interface {
	Next() (string, error)
	Close() error
}

// ReaderFactory opens item iterators over one array-valued field of a JSON
// source document. Opening the same field twice yields the sequence again
// from the start.
type ReaderFactory interface {
	Open(path, field string) (ItemIterator, error)
}
