package quality

import (
	"fmt"
	"strings"

	"culler/internal/probe"
)

// Probe-path rule tables. Codec identifiers come from stream metadata, so
// tokens reflect encoder/muxer naming rather than release tags.

var probeVideoRules = []tokenRule{
	{tokens: []string{"av1"}, label: "AV1", points: 25},
	{tokens: []string{"hevc", "h265", "x265", "h.265"}, label: "HEVC", points: 20},
	{tokens: []string{"vp9"}, label: "VP9", points: 18},
	{tokens: []string{"avc", "h264", "x264", "h.264"}, label: "H.264", points: 15},
	{tokens: []string{"mpeg4", "msmpeg4", "xvid", "divx"}, label: "MPEG-4", points: 5},
	{tokens: []string{"vc1", "vc-1"}, label: "VC-1", points: 8},
}

var probeAudioRules = []tokenRule{
	{tokens: []string{"atmos"}, label: "Atmos", points: 15},
	{tokens: []string{"dts:x", "dts-x", "dtsx"}, label: "DTS:X", points: 14},
	{tokens: []string{"truehd"}, label: "TrueHD", points: 12},
	{tokens: []string{"dts-hd", "dtshd", "dts hd"}, label: "DTS-HD", points: 10},
	{tokens: []string{"dts"}, label: "DTS", points: 8},
	{tokens: []string{"eac3", "eac-3", "e-ac-3", "e-ac3"}, label: "EAC3", points: 7},
	{tokens: []string{"flac"}, label: "FLAC", points: 6},
	{tokens: []string{"ac3", "ac-3"}, label: "AC3", points: 5},
	{tokens: []string{"pcm"}, label: "PCM", points: 4},
	{tokens: []string{"opus"}, label: "Opus", points: 4},
	{tokens: []string{"vorbis"}, label: "Vorbis", points: 2},
	{tokens: []string{"mp3"}, label: "MP3", points: 1},
	{tokens: []string{"aac"}, label: "AAC", points: 3},
}

// hdrFormatRules rank probed HDR formats; Dolby Vision outranks HDR10+
// outranks HDR10 outranks HLG. Anything else HDR-flagged gets the generic
// bonus.
var hdrFormatRules = []tokenRule{
	{tokens: []string{"dolby vision", "dolbyvision", "dovi"}, label: "Dolby Vision", points: 18},
	{tokens: []string{"hdr10+", "hdr10plus"}, label: "HDR10+", points: 16},
	{tokens: []string{"hdr10"}, label: "HDR10", points: 12},
	{tokens: []string{"hlg"}, label: "HLG", points: 10},
}

const (
	unrecognizedVideoPoints = 10
	unrecognizedAudioPoints = 2
	genericHDRPoints        = 10
)

func scoreFromProbe(score *Score, result probe.Result) {
	score.DataSource = FromProbe
	score.BitrateBps = result.BitrateBps

	scoreProbeResolution(score, result.Height)
	scoreProbeVideoCodec(score, result.VideoCodec)
	scoreProbeAudio(score, result.AudioCodec, result.AudioChannels)
	scoreProbeHDR(score, result)
	scoreProbeBitrate(score, result.BitrateBps)
}

// Resolution comes from actual pixel height, bucketed at standard
// thresholds. Nonstandard heights above zero still earn a small bonus with
// an honest label.
func scoreProbeResolution(score *Score, height int) {
	switch {
	case height >= 2160:
		score.Resolution = "2160p"
		score.add("2160p", 100)
	case height >= 1080:
		score.Resolution = "1080p"
		score.add("1080p", 80)
	case height >= 720:
		score.Resolution = "720p"
		score.add("720p", 60)
	case height >= 480:
		score.Resolution = "480p"
		score.add("480p", 40)
	case height > 0:
		label := fmt.Sprintf("%dp", height)
		score.Resolution = label
		score.add(label, 20)
	}
}

func scoreProbeVideoCodec(score *Score, codec string) {
	codec = strings.ToLower(strings.TrimSpace(codec))
	if codec == "" {
		return
	}
	if rule, ok := matchTokens(codec, probeVideoRules); ok {
		score.Codec = rule.label
		score.add(rule.label, rule.points)
		return
	}
	score.Codec = strings.ToUpper(codec)
	score.add(score.Codec, unrecognizedVideoPoints)
}

func scoreProbeAudio(score *Score, codec string, channels int) {
	codec = strings.ToLower(strings.TrimSpace(codec))
	if codec == "" {
		return
	}
	label := ""
	points := 0
	if rule, ok := matchTokens(codec, probeAudioRules); ok {
		label = rule.label
		points = rule.points
	} else {
		label = strings.ToUpper(codec)
		points = unrecognizedAudioPoints
	}
	score.Audio = label
	reason := label
	if channels > 0 {
		reason = fmt.Sprintf("%s %dch", label, channels)
	}
	score.add(reason, points)
}

func scoreProbeHDR(score *Score, result probe.Result) {
	if !result.HDR() {
		return
	}
	score.HDR = true
	format := strings.ToLower(result.HDRFormat)
	if rule, ok := matchTokens(format, hdrFormatRules); ok {
		score.HDRFormat = rule.label
		score.add(rule.label, rule.points)
		return
	}
	score.HDRFormat = "HDR"
	score.add("HDR", genericHDRPoints)
}

// Bitrate bonus tiers. Only the probe path sees a bitrate, so this bonus
// never applies to filename-only scores.
func scoreProbeBitrate(score *Score, bps int64) {
	mbps := bps / 1_000_000
	var points int
	switch {
	case mbps >= 40:
		points = 20
	case mbps >= 20:
		points = 15
	case mbps >= 10:
		points = 10
	case mbps >= 5:
		points = 5
	default:
		return
	}
	score.add(fmt.Sprintf("bitrate %d Mbps", mbps), points)
}
