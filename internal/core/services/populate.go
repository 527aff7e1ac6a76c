package services

import (
	"context"
	"fmt"

	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// Ensure PopulateService implements the interface.
var _ driving.Populator = (*PopulateService)(nil)

// PopulateService rebuilds every destination list from one source document.
type PopulateService struct {
	loader  *Loader
	readers driven.ReaderFactory
	keys    domain.Keys
}

// NewPopulateService creates a populate service.
func NewPopulateService(loader *Loader, readers driven.ReaderFactory, keys domain.Keys) *PopulateService {
	return &PopulateService{loader: loader, readers: readers, keys: keys}
}

// PopulateAll reloads the degrees, institutions and roles lists as-is, then
// rebuilds the companies list deduplicated: companies from the document
// first, institutions merged in after, each value kept on first occurrence.
func (s *PopulateService) PopulateAll(ctx context.Context, path string, chunk int) (*driving.PopulateReport, error) {
	report := &driving.PopulateReport{}

	plain := []struct {
		field string
		key   string
		count *int
	}{
		{domain.FieldDegree, s.keys.Degrees, &report.Degrees},
		{domain.FieldInstitution, s.keys.Institutions, &report.Institutions},
		{domain.FieldRole, s.keys.Roles, &report.Roles},
	}

	for _, p := range plain {
		n, err := s.loadField(ctx, path, p.field, p.key, chunk)
		if err != nil {
			return report, err
		}
		*p.count = n
	}

	setKey := domain.MemberSet(s.keys.Companies)
	if err := s.loader.Reset(ctx, s.keys.Companies, setKey); err != nil {
		return report, err
	}

	fromFile, err := s.mergeField(ctx, path, domain.FieldCompanies, setKey, chunk)
	if err != nil {
		return report, err
	}
	report.CompaniesFromFile = fromFile

	fromInsts, err := s.mergeField(ctx, path, domain.FieldInstitution, setKey, chunk)
	if err != nil {
		return report, err
	}
	report.CompaniesFromInstitutions = fromInsts

	total, err := s.loader.Len(ctx, s.keys.Companies)
	if err != nil {
		return report, err
	}
	report.CompaniesTotal = total

	return report, nil
}

// loadField replaces one destination list with the document field's items.
func (s *PopulateService) loadField(ctx context.Context, path, field, key string, chunk int) (int, error) {
	it, err := s.readers.Open(path, field)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", field, err)
	}
	defer it.Close()

	logger.Info("Loading %s into %s", field, key)
	n, err := s.loader.Load(ctx, key, it, chunk)
	if err != nil {
		return n, fmt.Errorf("load %s: %w", key, err)
	}
	return n, nil
}

// mergeField appends the document field's new items to the companies list.
func (s *PopulateService) mergeField(ctx context.Context, path, field, setKey string, chunk int) (int, error) {
	it, err := s.readers.Open(path, field)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", field, err)
	}
	defer it.Close()

	logger.Info("Merging %s into %s (deduplicated)", field, s.keys.Companies)
	n, err := s.loader.LoadDeduped(ctx, s.keys.Companies, setKey, it, chunk)
	if err != nil {
		return n, fmt.Errorf("merge %s: %w", field, err)
	}
	return n, nil
}
