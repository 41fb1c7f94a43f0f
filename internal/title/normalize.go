package title

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Result carries the outcome of normalizing one raw name. Empty fields mean
// the signal was absent, never that normalization failed.
type Result struct {
	// Title is the lowercased grouping key. May be empty when the name
	// carried nothing before its year or tags.
	Title string
	// Year is the 4-digit release year, or empty when none was found.
	Year string
}

var (
	yearPattern      = regexp.MustCompile(`(19|20)\d{2}`)
	yearTailPattern  = regexp.MustCompile(`[(\[]?(19|20)\d{2}[)\]]?.*$`)
	qualityTail      = regexp.MustCompile(`(?i)\s*(720p|1080p|2160p|4k|hdrip|dvdrip|brrip|bluray|web-dl|webrip|x264|x265|hevc).*$`)
	multiSpace       = regexp.MustCompile(`\s+`)
	leadingArticle   = regexp.MustCompile(`^(the|a|an)\s+`)
	separatorFolding = strings.NewReplacer(".", " ", "_", " ", "-", " ")
)

// mediaExtensions are the suffixes stripped before normalization. Stripping
// only known extensions keeps dotted release names intact ("Plan.9" is a
// title, not a file called "Plan" with extension ".9").
var mediaExtensions = map[string]struct{}{
	".mp4": {}, ".mkv": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".flv": {}, ".m4v": {},
	".srt": {}, ".sub": {}, ".idx": {}, ".ass": {}, ".ssa": {}, ".vtt": {},
	".nfo": {}, ".rar": {}, ".zip": {},
}

// Normalize extracts a release year and a canonical comparable title from a
// raw folder or file name. It never fails; the worst case is an empty title.
// Leading-article removal is single-pass: "The The Movie" normalizes to
// "the movie", and renormalizing that strips the second article.
func Normalize(rawName string) Result {
	base := StripExtension(rawName)

	var year string
	if match := yearPattern.FindString(base); match != "" {
		year = match
	}

	// Everything from the year onward is assumed to be year plus release
	// tags; drop it, then drop any quality tags that survive (names with
	// tags but no year).
	working := yearTailPattern.ReplaceAllString(base, "")
	working = qualityTail.ReplaceAllString(working, "")

	working = separatorFolding.Replace(working)
	working = multiSpace.ReplaceAllString(working, " ")
	working = strings.ToLower(strings.TrimSpace(working))
	working = leadingArticle.ReplaceAllString(working, "")

	return Result{Title: working, Year: year}
}

// StripExtension removes a single trailing media extension from the name.
// Unknown suffixes are left alone.
func StripExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := mediaExtensions[ext]; ok {
		return name[:len(name)-len(ext)]
	}
	return name
}
