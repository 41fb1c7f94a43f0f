// Package logging assembles the structured slog loggers used across culler.
//
// It centralizes level and format plumbing and exposes helpers so component
// code can tag log lines consistently. Prefer these constructors over
// hand-rolled slog setup so every component emits data with the same shape.
package logging
