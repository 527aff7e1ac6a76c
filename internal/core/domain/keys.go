package domain

// Source document field names. The data files are JSON objects whose
// array-valued fields carry the datasets.
const (
	FieldDegree      = "degree"
	FieldInstitution = "institution"
	FieldRole        = "role"
	FieldCompanies   = "companies"
)

// Keys names the destination lists in the store. Every load run deletes and
// rebuilds the keys it owns, so the names double as the run's ownership claim.
type Keys struct {
	Degrees      string
	Institutions string
	Roles        string
	Companies    string
}

// DefaultKeys returns the destination key names used by the data files.
func DefaultKeys() Keys {
	return Keys{
		Degrees:      "degrees",
		Institutions: "institutions",
		Roles:        "roles",
		Companies:    "companies",
	}
}

// MemberSet returns the membership-index key paired with a destination list.
// The set records which values have been appended so deduplication never
// needs the list itself in memory.
func MemberSet(listKey string) string {
	return listKey + ":set"
}
