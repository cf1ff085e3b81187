// Package driving defines the interfaces external actors use to drive
// the core: the search engine and the index builder.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter (or any other transport) depends on these interfaces,
// and core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
