// Package videos classifies provider video records.
package videos

import "strings"

// IsTrailer reports whether a video record is a playable trailer: hosted on
// YouTube and typed as a trailer or teaser. Comparisons are case-insensitive.
func IsTrailer(site, videoType string) bool {
	if !strings.EqualFold(site, "youtube") {
		return false
	}
	return strings.EqualFold(videoType, "trailer") || strings.EqualFold(videoType, "teaser")
}
