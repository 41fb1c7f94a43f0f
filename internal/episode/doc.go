// Package episode extracts season and episode numbering from release file
// names.
//
// Parsing runs an ordered rule table; the first rule that matches wins and
// later rules are never attempted. Rules are ordered from the most reliable
// marker (S01E01) to a documented-unreliable compact 3-digit fallback that
// collides with years and resolutions and is therefore tried last.
package episode
