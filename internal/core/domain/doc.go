// Package domain contains the core types of the concordia search engine:
// homilies, languages, search options and frequency reports.
//
// # Import Rules
//
//   - Can Import: standard library only
//   - Cannot Import: ports, services, adapters
//
// Everything here is plain data plus invariant-preserving helpers, so
// services and adapters on both sides of the ports can share them freely.
package domain
