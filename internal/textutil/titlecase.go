package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase renders a display-friendly title from a cleaned name. Casing uses
// the undetermined language so results never vary with the host locale.
func TitleCase(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return cases.Title(language.Und).String(name)
}
