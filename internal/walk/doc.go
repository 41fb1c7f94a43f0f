// Package walk enumerates a library root into the raw entry records the
// scanner consumes.
//
// A library root holds one folder per movie (the principal video is the
// largest video file inside) plus occasional loose video files. The walker
// also surfaces basic health findings (folders without video, zero-byte or
// suspiciously small principal videos) as warnings; it never mutates
// anything.
package walk
