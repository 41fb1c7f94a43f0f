// Package title derives a comparable title and release year from raw
// folder and file names.
//
// Release names carry the title up front and pile year, quality, and group
// tags behind it, so normalization truncates at the first year-like token,
// strips trailing quality tags, and folds separators and case. The result
// is a best-effort grouping key, not a display string; Display produces the
// human-facing form.
package title
