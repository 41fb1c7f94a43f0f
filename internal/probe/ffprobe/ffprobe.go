package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"culler/internal/probe"
)

// Prober runs the ffprobe binary against media files.
type Prober struct {
	Binary  string
	Timeout time.Duration
}

// New constructs a Prober. An empty binary falls back to "ffprobe" on PATH.
func New(binary string, timeout time.Duration) *Prober {
	return &Prober{Binary: binary, Timeout: timeout}
}

type payload struct {
	Streams []stream `json:"streams"`
	Format  format   `json:"format"`
}

type stream struct {
	CodecName     string     `json:"codec_name"`
	CodecType     string     `json:"codec_type"`
	CodecTag      string     `json:"codec_tag_string"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Channels      int        `json:"channels"`
	Profile       string     `json:"profile"`
	ColorTransfer string     `json:"color_transfer"`
	SideDataList  []sideData `json:"side_data_list"`
}

type sideData struct {
	SideDataType string `json:"side_data_type"`
}

type format struct {
	BitRate string `json:"bit_rate"`
}

// Probe executes ffprobe against the provided path and maps the decoded
// payload into a probe.Result.
func (p *Prober) Probe(ctx context.Context, path string) (probe.Result, error) {
	binary := strings.TrimSpace(p.Binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return probe.Result{}, errors.New("ffprobe: empty path")
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return probe.Result{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var decoded payload
	if err := json.Unmarshal(output, &decoded); err != nil {
		return probe.Result{}, fmt.Errorf("ffprobe parse %s: %w", path, err)
	}
	return mapResult(decoded), nil
}

func mapResult(decoded payload) probe.Result {
	var result probe.Result
	for _, s := range decoded.Streams {
		switch strings.ToLower(s.CodecType) {
		case "video":
			if result.VideoCodec != "" {
				continue
			}
			result.VideoCodec = s.CodecName
			result.Width = s.Width
			result.Height = s.Height
			result.HDRFormat = hdrFormat(s)
		case "audio":
			if result.AudioCodec != "" {
				continue
			}
			result.AudioCodec = audioCodec(s)
			result.AudioChannels = s.Channels
		}
	}
	if rate, err := strconv.ParseInt(strings.TrimSpace(decoded.Format.BitRate), 10, 64); err == nil && rate > 0 {
		result.BitrateBps = rate
	}
	return result
}

// hdrFormat classifies the primary video stream's HDR signaling. Dolby
// Vision shows up as a dvh1/dvhe codec tag or a DOVI side-data block,
// HDR10+ as SMPTE 2094-40 dynamic metadata, and plain HDR10/HLG via the
// transfer characteristic.
func hdrFormat(s stream) string {
	tag := strings.ToLower(s.CodecTag)
	if tag == "dvh1" || tag == "dvhe" {
		return "Dolby Vision"
	}
	for _, sd := range s.SideDataList {
		kind := strings.ToLower(sd.SideDataType)
		if strings.Contains(kind, "dovi") {
			return "Dolby Vision"
		}
		if strings.Contains(kind, "2094") {
			return "HDR10+"
		}
	}
	switch strings.ToLower(s.ColorTransfer) {
	case "smpte2084":
		return "HDR10"
	case "arib-std-b67":
		return "HLG"
	}
	return ""
}

// audioCodec widens the bare codec name with the profile when it
// disambiguates (DTS variants and TrueHD Atmos live in the profile field).
func audioCodec(s stream) string {
	profile := strings.TrimSpace(s.Profile)
	if profile == "" {
		return s.CodecName
	}
	return s.CodecName + " " + profile
}
