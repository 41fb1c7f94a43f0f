package probe

import (
	"context"
	"strings"
)

// Result carries the stream facts a media prober reads from a file's
// encoded headers. Zero values mean the prober could not determine the
// field.
type Result struct {
	VideoCodec    string
	AudioCodec    string
	Width         int
	Height        int
	BitrateBps    int64
	AudioChannels int
	// HDRFormat is one of "Dolby Vision", "HDR10+", "HDR10", "HLG", a
	// free-form format string, or empty for SDR/unknown.
	HDRFormat string
}

// HDR reports whether the probe observed any HDR transfer.
func (r Result) HDR() bool {
	return strings.TrimSpace(r.HDRFormat) != ""
}

// Usable reports whether the result carries enough signal to refine a
// filename-derived quality score.
func (r Result) Usable() bool {
	return r.Height > 0 || strings.TrimSpace(r.VideoCodec) != ""
}

// Prober inspects a media file and reports its stream metadata. Failures
// must surface as errors, not panics; callers degrade to filename-only
// scoring.
type Prober interface {
	Probe(ctx context.Context, path string) (Result, error)
}
