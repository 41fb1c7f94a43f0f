// Package fingerprint computes fast content-identity hashes for media
// files.
//
// Large files are hashed from a head sample, a tail sample, and the file
// length instead of their full content, which detects byte-identical
// releases without reading multi-gigabyte videos. Two different encodes
// sharing identical head/tail padding could collide, which is acceptable:
// the fingerprint only strengthens title-based duplicate grouping, it never
// replaces it. The digest serves identity, not security.
package fingerprint
