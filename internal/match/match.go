package match

import (
	"strconv"
	"strings"

	"reelmatch/internal/textutil"
)

// Candidate is one search result from an external metadata provider. A single
// record covers both movie and TV results; callers map provider fields
// (title/name, release date/first air date) into it before matching.
type Candidate struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name,omitempty"`
	Year         int    `json:"year,omitempty"`
}

// YearOf extracts the four-digit year from a provider date string such as
// "2014-07-23". Returns 0 when the date is absent or unparseable.
func YearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

// yearTolerance forgives release-date vs. production-year discrepancies
// while still rejecting wildly wrong years.
const yearTolerance = 2

// Best picks the best candidate for the query. Candidates must be in provider
// rank order. The second return value is false when candidates is empty;
// "no match" is an expected outcome, not an error.
func Best(name string, year int, candidates []Candidate) (Candidate, bool) {
	working := candidates
	if narrowed := filterByName(name, working); len(narrowed) > 0 {
		working = narrowed
	}
	if year > 0 {
		if narrowed := filterByYear(year, working); len(narrowed) > 0 {
			working = narrowed
		}
	}
	if len(working) == 0 {
		return Candidate{}, false
	}
	return working[0], true
}

// filterByName keeps candidates whose stripped display or original name
// equals the query name, ignoring case. Provider ranking sometimes places
// fuzzy matches ahead of an exact one.
func filterByName(name string, candidates []Candidate) []Candidate {
	var matched []Candidate
	for _, c := range candidates {
		if strings.EqualFold(textutil.StripInvalid(c.Name), name) ||
			strings.EqualFold(textutil.StripInvalid(c.OriginalName), name) {
			matched = append(matched, c)
		}
	}
	return matched
}

// filterByYear keeps candidates with a known release year within the
// tolerance window of the target year.
func filterByYear(year int, candidates []Candidate) []Candidate {
	var matched []Candidate
	for _, c := range candidates {
		if c.Year == 0 {
			continue
		}
		delta := c.Year - year
		if delta < 0 {
			delta = -delta
		}
		if delta <= yearTolerance {
			matched = append(matched, c)
		}
	}
	return matched
}
