package quality

import (
	"fmt"
	"strings"

	"culler/internal/probe"
)

// DataSource identifies which evidence produced a Score.
type DataSource string

const (
	// FromFilename means the score was inferred from release-name tokens.
	FromFilename DataSource = "filename"
	// FromProbe means resolution/codec/audio/HDR came from stream metadata.
	FromProbe DataSource = "probe"
)

// Unknown is the label used when a category produced no signal.
const Unknown = "Unknown"

// Score is the labeled, auditable quality assessment of one media item.
type Score struct {
	// Score is the additive total. Never negative.
	Score      int
	Resolution string
	Source     string
	Codec      string
	Audio      string
	HDR        bool
	HDRFormat  string
	// BitrateBps is the probed container bitrate, 0 when unknown.
	BitrateBps int64
	DataSource DataSource
	// Reasons records each contributing token and its point delta in
	// evaluation order.
	Reasons []string
}

// tokenRule maps any of its lowercased substrings onto a label and weight.
// Rules within a category are ordered most-specific first; evaluation stops
// at the first hit.
type tokenRule struct {
	tokens []string
	label  string
	points int
}

func matchTokens(haystack string, rules []tokenRule) (tokenRule, bool) {
	for _, rule := range rules {
		for _, token := range rule.tokens {
			if strings.Contains(haystack, token) {
				return rule, true
			}
		}
	}
	return tokenRule{}, false
}

// Evaluate computes the quality score for one item. When probeResult is
// non-nil and carries usable stream facts, resolution/codec/audio/HDR come
// from it; otherwise everything is inferred from the file name. A nil probe
// and an empty name are both fine: the result is a zero score with Unknown
// labels, never an error.
func Evaluate(fileName string, probeResult *probe.Result) Score {
	score := Score{
		Resolution: Unknown,
		Source:     Unknown,
		Codec:      Unknown,
		Audio:      Unknown,
		DataSource: FromFilename,
	}

	lower := strings.ToLower(fileName)

	// Acquisition source is a release fact, not a stream fact.
	if rule, ok := matchTokens(lower, sourceRules); ok {
		score.Source = rule.label
		score.add(rule.label, rule.points)
	}

	if probeResult != nil && probeResult.Usable() {
		scoreFromProbe(&score, *probeResult)
		return score
	}

	scoreFromFilename(&score, lower)
	return score
}

func (s *Score) add(reason string, points int) {
	s.Score += points
	s.Reasons = append(s.Reasons, fmt.Sprintf("%s (+%d)", reason, points))
}
