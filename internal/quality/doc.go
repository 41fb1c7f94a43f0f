// Package quality computes an additive quality score for a media item from
// its release name, optionally refined by probed stream metadata.
//
// Each category (resolution, source, codec, audio, HDR) is an independent
// axis evaluated against an ordered rule table; only the first matching
// rule per category contributes, so more specific tokens must come before
// generic ones. Every contribution is recorded in Reasons so a score can
// be audited after the fact.
//
// The acquisition source (BluRay vs WEB-DL) is always derived from the
// release name: a prober cannot observe it from the encoded stream.
package quality
