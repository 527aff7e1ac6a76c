// Package json reads string arrays out of JSON source documents.
//
// It implements the driven.ReaderFactory port with two variants behind one
// capability check: a streaming reader built on jsoniter's incremental
// Iterator API that never materialises the document, and a buffered reader
// that parses the whole file. The streaming variant is the default; the
// buffered one serves as the forced (--no-stream) and fallback path.
//
// The package also provides the top-level JSON object counter used by the
// count command.
package json
