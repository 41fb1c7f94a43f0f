// Package probe defines the stream-metadata record consumed by quality
// scoring and the interface an external media prober fulfils.
//
// Scoring treats probe data as an optional refinement: absence or failure
// degrades to filename heuristics and is never fatal. The ffprobe
// subpackage provides the default implementation.
package probe
