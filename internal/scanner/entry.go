package scanner

import "culler/internal/quality"

// MediaEntry is one analyzed library item. Entries are immutable once
// computed and live only for the scan pass that produced them.
type MediaEntry struct {
	Path        string
	DisplayName string
	FileSize    int64
	// NormalizedTitle is the lowercased grouping key; empty when the name
	// carried no usable title.
	NormalizedTitle string
	// Year is the detected 4-digit release year, empty when absent.
	Year    string
	Quality quality.Score
	// Fingerprint is the content hash, empty when fingerprinting was
	// disabled or failed for this entry.
	Fingerprint string
}
