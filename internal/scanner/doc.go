// Package scanner turns raw library entries into fully analyzed media
// entries.
//
// Per-entry work (title normalization, quality scoring, optional probe
// refinement, optional fingerprinting) is a pure function of the entry, so
// the scanner fans it out over a bounded worker pool and checks for
// cancellation between entries. Per-entry failures degrade that entry and
// are collected as warnings; they never abort the batch.
package scanner
