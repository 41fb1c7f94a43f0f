package quality

// Rule tables for the filename path. Order within each table is load
// bearing: the first matching rule wins, so higher-value and more specific
// tokens precede generic ones ("remux" before "bluray", "eac3" before
// "ac3", "hdr10+" before "hdr10" before "hdr").

var resolutionRules = []tokenRule{
	{tokens: []string{"2160p", "4k", "uhd"}, label: "2160p", points: 100},
	{tokens: []string{"1080p"}, label: "1080p", points: 80},
	{tokens: []string{"720p"}, label: "720p", points: 60},
	{tokens: []string{"480p", "dvd"}, label: "480p", points: 40},
}

var sourceRules = []tokenRule{
	{tokens: []string{"remux"}, label: "Remux", points: 35},
	{tokens: []string{"bluray", "blu-ray", "bdrip", "brrip"}, label: "BluRay", points: 30},
	{tokens: []string{"web-dl", "webdl"}, label: "WEB-DL", points: 25},
	{tokens: []string{"webrip"}, label: "WEBRip", points: 20},
	{tokens: []string{"hdtv"}, label: "HDTV", points: 15},
	{tokens: []string{"dvdrip"}, label: "DVDRip", points: 10},
}

var codecRules = []tokenRule{
	{tokens: []string{"av1"}, label: "AV1", points: 25},
	{tokens: []string{"x265", "h265", "h.265", "hevc"}, label: "HEVC/x265", points: 20},
	{tokens: []string{"vp9"}, label: "VP9", points: 18},
	{tokens: []string{"x264", "h264", "h.264", "avc"}, label: "x264", points: 15},
	{tokens: []string{"xvid", "divx"}, label: "XviD", points: 5},
}

var audioRules = []tokenRule{
	{tokens: []string{"atmos"}, label: "Atmos", points: 15},
	{tokens: []string{"dts:x", "dts-x", "dtsx"}, label: "DTS:X", points: 14},
	{tokens: []string{"truehd"}, label: "TrueHD", points: 12},
	{tokens: []string{"dts-hd", "dtshd"}, label: "DTS-HD", points: 10},
	{tokens: []string{"dts"}, label: "DTS", points: 8},
	{tokens: []string{"eac3", "e-ac3", "e-ac-3", "dd+", "ddp"}, label: "EAC3", points: 7},
	{tokens: []string{"flac"}, label: "FLAC", points: 6},
	{tokens: []string{"ac3", "dd5.1", "dd5 1"}, label: "AC3", points: 5},
	{tokens: []string{"opus"}, label: "Opus", points: 4},
	{tokens: []string{"aac"}, label: "AAC", points: 3},
}

var hdrRules = []tokenRule{
	{tokens: []string{"dolby vision", "dolbyvision", "dovi", " dv "}, label: "Dolby Vision", points: 18},
	{tokens: []string{"hdr10+", "hdr10plus"}, label: "HDR10+", points: 16},
	{tokens: []string{"hdr10"}, label: "HDR10", points: 12},
	{tokens: []string{"hlg"}, label: "HLG", points: 10},
	{tokens: []string{"hdr"}, label: "HDR", points: 10},
}

func scoreFromFilename(score *Score, lowerName string) {
	if rule, ok := matchTokens(lowerName, resolutionRules); ok {
		score.Resolution = rule.label
		score.add(rule.label, rule.points)
	}
	if rule, ok := matchTokens(lowerName, codecRules); ok {
		score.Codec = rule.label
		score.add(rule.label, rule.points)
	}
	if rule, ok := matchTokens(lowerName, audioRules); ok {
		score.Audio = rule.label
		score.add(rule.label, rule.points)
	}
	if rule, ok := matchTokens(lowerName, hdrRules); ok {
		score.HDR = true
		score.HDRFormat = rule.label
		score.add(rule.label, rule.points)
	}
}
