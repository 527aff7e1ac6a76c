package driving

// Counter reports the number of top-level JSON objects in a file.
//
// A top-level array counts as its length, an object as 1, anything else as 0.
// Read and parse failures yield 0 together with the error; the count command
// reports the error but still prints the number (diagnostic tool semantics).
type Counter interface {
	Count(path string) (int, error)
}
