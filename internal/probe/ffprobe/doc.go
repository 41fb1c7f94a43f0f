// Package ffprobe shells out to ffprobe and adapts its JSON output into
// the probe.Result consumed by quality scoring.
package ffprobe
