package episode

import (
	"regexp"
	"strconv"
	"strings"

	"culler/internal/title"
)

// Info is the structured result of parsing one file name. Season and
// Episode are meaningful only when IsEpisode reports true.
type Info struct {
	Season  int
	Episode int
	// Episodes holds every captured episode number in order. Empty when the
	// name did not parse as an episode.
	Episodes       []int
	ShowTitle      string
	EpisodeTitle   string
	IsMultiEpisode bool
}

// IsEpisode reports whether the name parsed as an episode at all.
func (i Info) IsEpisode() bool {
	return len(i.Episodes) > 0
}

// rule pairs a compiled pattern with the code that turns its captures into
// an Info. Rules run in order; the first match wins.
type rule struct {
	pattern *regexp.Regexp
	apply   func(match []string) Info
}

var (
	separatorFolding = strings.NewReplacer(".", " ", "_", " ", "-", " ")
	multiSpace       = regexp.MustCompile(`\s+`)
	leadingSeparator = regexp.MustCompile(`^[.\s_-]+`)
	remainderTags    = regexp.MustCompile(`(?i)\s*(720p|1080p|2160p|4k|hdtv|web-dl|webrip|bluray|x264|x265|hevc|aac|ac3).*$`)
)

var rules = []rule{
	// S01E01, S01E01E02, S01E01-E03. Up to three episode captures; a range
	// like E01-E03 records [1, 3] and drops the implied middle episode.
	{
		pattern: regexp.MustCompile(`^(.+?)[.\s_-]+[Ss](\d{1,2})[Ee](\d{1,2})(?:[Ee](\d{1,2}))?(?:-?[Ee](\d{1,2}))?(.*)$`),
		apply: func(m []string) Info {
			info := Info{
				ShowTitle: foldSeparators(m[1]),
				Season:    mustInt(m[2]),
				Episode:   mustInt(m[3]),
				Episodes:  []int{mustInt(m[3])},
			}
			if m[4] != "" {
				info.Episodes = append(info.Episodes, mustInt(m[4]))
			}
			if m[5] != "" {
				info.Episodes = append(info.Episodes, mustInt(m[5]))
			}
			info.IsMultiEpisode = len(info.Episodes) > 1
			if m[6] != "" {
				info.EpisodeTitle = cleanRemainder(m[6])
			}
			return info
		},
	},
	// 1x01 form.
	{
		pattern: regexp.MustCompile(`^(.+?)[.\s_-]+(\d{1,2})x(\d{1,2})(?:[.\s_-].*)?$`),
		apply:   applySimple,
	},
	// Season 1 Episode 1 form.
	{
		pattern: regexp.MustCompile(`(?i)^(.+?)[.\s_-]+season\s*(\d{1,2})[.\s_-]+episode\s*(\d{1,2})(?:[.\s_-].*)?$`),
		apply:   applySimple,
	},
	// Compact 3-digit fallback: first digit season, last two episode.
	// Unreliable (collides with years and resolutions when separators are
	// unusual), so it runs only when nothing above matched. Both ends must
	// be separator-delimited, which keeps 4-digit years and tokens like
	// 720p from matching.
	{
		pattern: regexp.MustCompile(`^(.+?)[.\s_-]+(\d)(\d{2})(?:[.\s_-]+.*)?$`),
		apply:   applySimple,
	},
}

func applySimple(m []string) Info {
	return Info{
		ShowTitle: foldSeparators(m[1]),
		Season:    mustInt(m[2]),
		Episode:   mustInt(m[3]),
		Episodes:  []int{mustInt(m[3])},
	}
}

// Parse extracts season/episode structure from a file name. Unparseable
// input yields a zero Info; Parse never fails.
func Parse(fileName string) Info {
	base := title.StripExtension(fileName)
	if strings.TrimSpace(base) == "" {
		return Info{}
	}
	for _, r := range rules {
		if match := r.pattern.FindStringSubmatch(base); match != nil {
			return r.apply(match)
		}
	}
	return Info{}
}

func foldSeparators(s string) string {
	s = separatorFolding.Replace(s)
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

func cleanRemainder(s string) string {
	s = leadingSeparator.ReplaceAllString(s, "")
	s = separatorFolding.Replace(s)
	s = remainderTags.ReplaceAllString(s, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
