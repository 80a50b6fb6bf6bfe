package textutil

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"punctuation run collapses", "Foo: Bar!", "Foo Bar "},
		{"plain name unchanged", "Hercules", "Hercules"},
		{"underscore is a word character", "foo_bar", "foo_bar"},
		{"mixed separators", "Spider-Man: No Way Home", "Spider Man No Way Home"},
		{"leading run", "...Rex", " Rex"},
		{"digits kept", "2001: A Space Odyssey", "2001 A Space Odyssey"},
		{"unicode letters kept", "Amélie!", "Amélie "},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripInvalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty passes through", "", ""},
		{"colon removed", "Hercules: The Legend", "Hercules The Legend"},
		{"all invalid characters", `<>:;?*\/"`, ""},
		{"question mark", "Who?", "Who"},
		{"no invalid characters", "Plain Title", "Plain Title"},
		{"pipe is kept", "a|b", "a|b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripInvalid(tt.input)
			if got != tt.expected {
				t.Errorf("StripInvalid(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"the dark knight", "The Dark Knight"},
		{"  spaced  ", "Spaced"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := TitleCase(tt.input)
			if got != tt.expected {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
