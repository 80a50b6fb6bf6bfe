package language

import "strings"

// Normalize rewrites a language tag into the form the provider expects.
// Tags without a region pass through unchanged. A region is uppercased
// ("en-us" becomes "en-US"), except the unsupported "CH" region, which is
// dropped entirely ("de-ch" becomes "de").
func Normalize(tag string) string {
	if tag == "" {
		return tag
	}
	parts := strings.SplitN(tag, "-", 2)
	if len(parts) < 2 {
		return tag
	}
	base, region := parts[0], parts[1]
	if strings.EqualFold(region, "CH") {
		return base
	}
	return base + "-" + strings.ToUpper(region)
}

// ImageLanguages builds the comma-joined language list for image requests.
// The order is significant: the normalized preferred tag (plus its 2-letter
// base when the tag has the xx-YY shape), the provider's literal "null"
// wildcard, then "en" unless the preferred tag already is plain English.
func ImageLanguages(preferred string) string {
	normalized := Normalize(preferred)
	values := make([]string, 0, 4)
	if normalized != "" {
		values = append(values, normalized)
		if len(normalized) == 5 {
			values = append(values, normalized[:2])
		}
	}
	values = append(values, "null")
	if !strings.EqualFold(normalized, "en") {
		values = append(values, "en")
	}
	return strings.Join(values, ",")
}

// AdjustImageLanguage widens a bare 2-letter image tag to the fuller request
// tag when the request tag starts with it, so "en" paired with a request for
// "en-US" yields "en-US". Anything else passes through unchanged.
func AdjustImageLanguage(imageLanguage, requestLanguage string) string {
	if imageLanguage != "" && requestLanguage != "" &&
		len(requestLanguage) > 2 && len(imageLanguage) == 2 &&
		strings.EqualFold(requestLanguage[:2], imageLanguage) {
		return requestLanguage
	}
	return imageLanguage
}
