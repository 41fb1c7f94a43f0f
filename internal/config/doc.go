// Package config loads, normalizes, and validates culler's TOML
// configuration.
//
// Load merges an on-disk config file over repository defaults, expands
// user-relative paths, and rejects unusable values before any component
// sees them. A sample configuration file is embedded for `culler config
// init`.
package config
