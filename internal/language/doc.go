// Package language provides language tag normalization for provider requests.
//
// Provider APIs accept BCP 47-ish tags with uppercase regions and a handful of
// quirks: an unsupported Swiss region, a literal "null" wildcard in image
// language lists, and 2-letter image tags that should widen to the requested
// tag. All tag rewriting is consolidated here, together with a small ISO 639
// table for human-readable CLI output.
package language
