package textutil

import (
	"regexp"
	"strings"
)

// nonWordPattern matches maximal runs of non-word characters. Word characters
// are letters, digits, and underscore.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Clean replaces every run of non-word characters with a single space.
// Unicode category classes keep the result deterministic with no locale
// dependency.
func Clean(name string) string {
	return nonWordPattern.ReplaceAllString(name, " ")
}

// invalidNameReplacer deletes characters that providers drop from titles
// destined for file names.
var invalidNameReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	":", "",
	";", "",
	"?", "",
	"*", "",
	"\\", "",
	"/", "",
	"\"", "",
)

// StripInvalid removes every filesystem-invalid character from name.
// Empty input passes through unchanged.
func StripInvalid(name string) string {
	if name == "" {
		return name
	}
	return invalidNameReplacer.Replace(name)
}
