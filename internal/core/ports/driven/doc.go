// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Store: key-value store operations (Redis in production, an in-memory
//     fake in tests)
//   - ItemIterator: lazy sequence of strings read from a source document
//   - ReaderFactory: opens iterators over a document field
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
