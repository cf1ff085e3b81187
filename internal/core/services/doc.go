// Package services implements the core search engine behind the driving
// ports: query compilation, corpus scanning, monthly aggregation and
// index building.
//
// SearchService compiles a raw term into a token matcher, scans the
// pre-folded corpus a store provides, and aggregates matches into the
// per-month report. IndexService is the only writer of derived index
// fields and doubles as the offline consistency checker.
//
// # Import Rules
//
//   - Can Import: domain, ports, normalise, logger
//   - Cannot Import: adapter packages
package services
