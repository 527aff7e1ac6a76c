// Package domain defines the core entities for redis-populate.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - source document field names (degree, institution, role, companies)
//   - destination key names and the membership-index convention
//   - sentinel errors shared across layers
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
