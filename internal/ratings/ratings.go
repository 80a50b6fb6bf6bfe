// Package ratings formats provider parental ratings for library display.
package ratings

import "strings"

// Build combines a country code and a rating value into a display rating.
// US ratings carry no prefix; other countries are prefixed with their code.
// Germany's rating board uses its own FSK label, so a leading "DE-" is
// rewritten to "FSK-".
func Build(countryCode, ratingValue string) string {
	prefix := ""
	if !strings.EqualFold(countryCode, "US") {
		prefix = countryCode + "-"
	}
	rating := prefix + ratingValue
	if len(rating) >= 3 && strings.EqualFold(rating[:3], "DE-") {
		rating = "FSK-" + rating[3:]
	}
	return rating
}
