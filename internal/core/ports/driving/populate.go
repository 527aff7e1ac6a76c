package driving

import "context"

// PopulateReport summarises a full load of the four datasets.
type PopulateReport struct {
	Degrees      int
	Institutions int
	Roles        int

	// CompaniesFromFile is the number of companies newly added from the
	// document's companies field.
	CompaniesFromFile int

	// CompaniesFromInstitutions is the number of institutions that were new
	// to the companies list when merged in after the companies themselves.
	CompaniesFromInstitutions int

	// CompaniesTotal is the final length of the companies list.
	CompaniesTotal int64
}

// Populator rebuilds every destination list from a source document.
type Populator interface {
	// PopulateAll deletes and reloads the degrees, institutions and roles
	// lists, then rebuilds the deduplicated companies list from the
	// document's companies followed by its institutions.
	PopulateAll(ctx context.Context, path string, chunk int) (*PopulateReport, error)
}
