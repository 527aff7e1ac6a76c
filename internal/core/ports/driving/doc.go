// Package driving defines the interfaces through which the CLI drives the
// core services.
//
// # Interfaces
//
//   - Populator: full in-memory load of all four datasets
//   - Pusher: streaming chunked load of institutions and companies
//   - Counter: top-level JSON object count for a file
//   - Inspector: enumeration of every key in the store
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
