package services

import (
	"context"
	"fmt"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// Ensure PushService implements the interface.
var _ driving.Pusher = (*PushService)(nil)

// PushService loads institutions and companies from a source document with
// bounded memory: the reader streams, the loader pipelines per chunk, and
// deduplication runs through the store's membership set rather than an
// in-memory index.
type PushService struct {
	loader  *Loader
	readers driven.ReaderFactory
	keys    domain.Keys
}

// NewPushService creates a push service.
func NewPushService(loader *Loader, readers driven.ReaderFactory, keys domain.Keys) *PushService {
	return &PushService{loader: loader, readers: readers, keys: keys}
}

// Push replaces the institutions list, then rebuilds the deduplicated
// companies list from the document's companies followed by a second pass
// over its institutions. The source is re-opened for the second pass, so
// streamed inputs never need to fit in memory.
func (s *PushService) Push(ctx context.Context, path string, opts driving.PushOptions) (*driving.PushReport, error) {
	report := &driving.PushReport{}

	it, err := s.readers.Open(path, domain.FieldInstitution)
	if err != nil {
		return report, fmt.Errorf("open %s: %w", domain.FieldInstitution, err)
	}
	logger.Info("Pushing institutions")
	n, err := s.loader.Load(ctx, s.keys.Institutions, it, opts.Chunk)
	it.Close()
	if err != nil {
		return report, fmt.Errorf("load %s: %w", s.keys.Institutions, err)
	}
	report.Institutions = n

	setKey := domain.MemberSet(s.keys.Companies)
	if err := s.loader.Reset(ctx, s.keys.Companies, setKey); err != nil {
		return report, err
	}

	it, err = s.readers.Open(path, domain.FieldCompanies)
	if err != nil {
		return report, fmt.Errorf("open %s: %w", domain.FieldCompanies, err)
	}
	logger.Info("Pushing companies (deduplicating through %s)", setKey)
	n, err = s.loader.LoadDeduped(ctx, s.keys.Companies, setKey, it, opts.Chunk)
	it.Close()
	if err != nil {
		return report, fmt.Errorf("merge %s: %w", domain.FieldCompanies, err)
	}
	report.CompaniesFromFile = n

	it, err = s.readers.Open(path, domain.FieldInstitution)
	if err != nil {
		return report, fmt.Errorf("reopen %s: %w", domain.FieldInstitution, err)
	}
	logger.Info("Appending institutions into %s (deduplicated)", s.keys.Companies)
	n, err = s.loader.LoadDeduped(ctx, s.keys.Companies, setKey, it, opts.Chunk)
	it.Close()
	if err != nil {
		return report, fmt.Errorf("merge %s: %w", domain.FieldInstitution, err)
	}
	report.CompaniesFromInstitutions = n

	total, err := s.loader.Len(ctx, s.keys.Companies)
	if err != nil {
		return report, err
	}
	report.CompaniesTotal = total

	return report, nil
}
