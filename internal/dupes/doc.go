// Package dupes partitions scanned media entries into duplicate groups
// with match-type provenance and a quality-ranked keep order.
//
// Grouping runs two phases: exact content-hash buckets first, then
// normalized-title buckets over whatever the exact phase did not consume.
// An entry belongs to at most one group per pass. The grouper only
// classifies and ranks; deleting anything is the caller's decision.
package dupes
