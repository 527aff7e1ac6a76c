package driving

import "context"

// PushOptions controls a push run.
type PushOptions struct {
	// Chunk is the batch size for pipelined writes.
	Chunk int
}

// PushReport summarises a push run.
type PushReport struct {
	Institutions              int
	CompaniesFromFile         int
	CompaniesFromInstitutions int
	CompaniesTotal            int64
}

// Pusher loads institutions and companies from a source document, merging
// institutions into the companies list with cross-call deduplication.
type Pusher interface {
	Push(ctx context.Context, path string, opts PushOptions) (*PushReport, error)
}
