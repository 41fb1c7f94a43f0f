package dupes

import (
	"sort"

	"culler/internal/scanner"
)

// MatchType records why a member landed in its group.
type MatchType string

const (
	// MatchExactHash means the member shares a content fingerprint with the
	// rest of its group.
	MatchExactHash MatchType = "exact_hash"
	// MatchTitle means the member shares a normalized title (and year, when
	// present) with the rest of its group.
	MatchTitle MatchType = "title_match"
	// MatchSimilarSize additionally tags title-matched members whose file
	// size lies within 10% of the group mean.
	MatchSimilarSize MatchType = "similar_size"
)

// Member is one entry inside a duplicate group together with its match
// provenance.
type Member struct {
	Entry      scanner.MediaEntry
	MatchTypes []MatchType
}

// Has reports whether the member carries the given match type.
func (m Member) Has(t MatchType) bool {
	for _, mt := range m.MatchTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// Group is an ordered set of probable duplicates. Members are sorted by
// descending quality score; the first member is the recommended keep.
type Group struct {
	// Key is the bucket key that formed the group: the fingerprint for
	// exact groups, the title(+year) key for probable groups.
	Key     string
	Members []Member
}

// Keep returns the recommended member to retain.
func (g Group) Keep() Member {
	return g.Members[0]
}

// DeleteCandidates returns every member ranked below the keep.
func (g Group) DeleteCandidates() []Member {
	return g.Members[1:]
}

// similarSizeTolerance is the fraction of the group's mean file size within
// which a member counts as similar.
const similarSizeTolerance = 0.10

// Group partitions entries into duplicate groups. Exact fingerprint groups
// are found first and their members are excluded from title-based grouping
// in the same pass. Output order is deterministic: exact groups before
// probable groups, each sorted by bucket key, members sorted by descending
// quality score.
func GroupEntries(entries []scanner.MediaEntry) []Group {
	groups, consumed := exactGroups(entries)
	groups = append(groups, titleGroups(entries, consumed)...)
	return groups
}

func exactGroups(entries []scanner.MediaEntry) ([]Group, map[string]struct{}) {
	buckets := make(map[string][]scanner.MediaEntry)
	order := make([]string, 0)
	for _, entry := range entries {
		if entry.Fingerprint == "" {
			continue
		}
		if _, seen := buckets[entry.Fingerprint]; !seen {
			order = append(order, entry.Fingerprint)
		}
		buckets[entry.Fingerprint] = append(buckets[entry.Fingerprint], entry)
	}
	sort.Strings(order)

	consumed := make(map[string]struct{})
	groups := make([]Group, 0)
	for _, key := range order {
		bucket := buckets[key]
		if len(bucket) < 2 {
			continue
		}
		members := make([]Member, 0, len(bucket))
		for _, entry := range bucket {
			consumed[entry.Path] = struct{}{}
			members = append(members, Member{Entry: entry, MatchTypes: []MatchType{MatchExactHash}})
		}
		sortMembers(members)
		groups = append(groups, Group{Key: key, Members: members})
	}
	return groups, consumed
}

func titleGroups(entries []scanner.MediaEntry, consumed map[string]struct{}) []Group {
	buckets := make(map[string][]scanner.MediaEntry)
	order := make([]string, 0)
	for _, entry := range entries {
		if _, done := consumed[entry.Path]; done {
			continue
		}
		key := titleKey(entry)
		if key == "" {
			continue
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], entry)
	}
	sort.Strings(order)

	groups := make([]Group, 0)
	for _, key := range order {
		bucket := buckets[key]
		if len(bucket) < 2 {
			continue
		}
		mean := meanSize(bucket)
		members := make([]Member, 0, len(bucket))
		for _, entry := range bucket {
			member := Member{Entry: entry, MatchTypes: []MatchType{MatchTitle}}
			if withinTolerance(entry.FileSize, mean) {
				member.MatchTypes = append(member.MatchTypes, MatchSimilarSize)
			}
			members = append(members, member)
		}
		sortMembers(members)
		groups = append(groups, Group{Key: key, Members: members})
	}
	return groups
}

// titleKey buckets on normalized title plus year when one was detected.
// Entries whose names normalized to nothing are never grouped: an empty
// key says nothing about identity.
func titleKey(entry scanner.MediaEntry) string {
	if entry.NormalizedTitle == "" {
		return ""
	}
	if entry.Year != "" {
		return entry.NormalizedTitle + "|" + entry.Year
	}
	return entry.NormalizedTitle
}

func meanSize(entries []scanner.MediaEntry) float64 {
	var total int64
	for _, entry := range entries {
		total += entry.FileSize
	}
	return float64(total) / float64(len(entries))
}

func withinTolerance(size int64, mean float64) bool {
	if mean <= 0 {
		return false
	}
	diff := float64(size) - mean
	if diff < 0 {
		diff = -diff
	}
	return diff/mean <= similarSizeTolerance
}

// sortMembers orders a group by descending score, breaking ties by larger
// file then path so output is stable regardless of bucket iteration order.
func sortMembers(members []Member) {
	sort.Slice(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if a.Entry.Quality.Score != b.Entry.Quality.Score {
			return a.Entry.Quality.Score > b.Entry.Quality.Score
		}
		if a.Entry.FileSize != b.Entry.FileSize {
			return a.Entry.FileSize > b.Entry.FileSize
		}
		return a.Entry.Path < b.Entry.Path
	})
}
