// Package textutil provides text processing utilities for preparing titles
// before provider matching.
//
// The primary use cases are:
//   - Collapsing punctuation runs so titles become comparison-friendly
//   - Stripping filesystem-invalid characters so two names can be compared
//   - Display-title casing for CLI output
//
// Stripping exists only to make two names comparable; it makes no filesystem
// safety guarantees.
package textutil
