// Package match selects the best candidate from a ranked provider search.
//
// Provider ranking is trusted but not absolute: an exact title match after
// stripping filesystem-invalid characters beats rank order, and a loose
// release-year window beats a same-title production from the wrong decade.
// Both refinements only ever narrow the working set; when a filter would
// empty it, the filter is skipped and the previous set is kept, so the
// original ranking stays the ultimate tie-break.
package match
