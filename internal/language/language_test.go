package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// No region passes through
		{"fr", "fr"},
		{"en", "en"},
		// Region uppercased
		{"en-us", "en-US"},
		{"en-US", "en-US"},
		{"pt-br", "pt-BR"},
		// Unsupported Swiss region dropped
		{"de-ch", "de"},
		{"de-CH", "de"},
		{"fr-Ch", "fr"},
		// Empty passes through
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestImageLanguages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 5-char tags contribute their base; "en" is appended unless the
		// preferred tag already is plain English.
		{"en-US", "en-US,en,null,en"},
		{"fr-FR", "fr-FR,fr,null,en"},
		{"en", "en,null"},
		{"EN", "EN,null"},
		{"de", "de,null,en"},
		// Swiss region is dropped before the 5-char check
		{"de-ch", "de,null,en"},
		// Empty preferred still yields the wildcard and English
		{"", "null,en"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ImageLanguages(tt.input)
			if got != tt.expected {
				t.Errorf("ImageLanguages(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAdjustImageLanguage(t *testing.T) {
	tests := []struct {
		name     string
		image    string
		request  string
		expected string
	}{
		{"widens to request tag", "en", "en-US", "en-US"},
		{"case-insensitive prefix", "EN", "en-US", "en-US"},
		{"different base unchanged", "de", "en-US", "de"},
		{"request too short", "en", "en", "en"},
		{"image already regioned", "en-US", "en-US", "en-US"},
		{"empty image", "", "en-US", ""},
		{"empty request", "en", "", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustImageLanguage(tt.image, tt.request)
			if got != tt.expected {
				t.Errorf("AdjustImageLanguage(%q, %q) = %q, want %q", tt.image, tt.request, got, tt.expected)
			}
		})
	}
}
