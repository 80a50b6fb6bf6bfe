// Package logging assembles the structured slog loggers used by reelmatch.
//
// It centralizes level and format plumbing and exposes typed attribute
// helpers so commands emit data with the same shape. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
