// Package catalog persists scan history in SQLite so reports can be
// revisited without rescanning the library.
//
// The store is an external collaborator of the analysis core: scans go in
// whole, come out whole, and nothing in here influences inference or
// grouping. Schema changes bump the embedded version; mismatched databases
// are rejected rather than migrated.
package catalog
