package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCandidates(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write candidates: %v", err)
	}
	return path
}

func TestMatchCommandSelectsBestCandidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeCandidates(t, `[
		{"name": "Hercules (1997 match)", "date": "1997-06-27"},
		{"name": "Hercules", "date": "2014-07-23"}
	]`)

	out, err := runCommand(t, "", "match", "--name", "Hercules", "--year", "2014", "--input", path, "--json")
	if err != nil {
		t.Fatalf("match command failed: %v", err)
	}

	var result matchOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if result.Candidates != 2 {
		t.Fatalf("expected 2 candidates, got %d", result.Candidates)
	}
	if result.Match == nil {
		t.Fatal("expected a match")
	}
	if result.Match.Year != 2014 {
		t.Fatalf("expected the 2014 candidate, got %d", result.Match.Year)
	}
}

func TestMatchCommandReadsStdin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, err := runCommand(t, `[{"name": "Hercules", "year": 2014}]`,
		"match", "--name", "Hercules", "--json")
	if err != nil {
		t.Fatalf("match command failed: %v", err)
	}
	if !strings.Contains(out, `"name": "Hercules"`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestMatchCommandNoMatchIsNotAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, err := runCommand(t, "[]", "match", "--name", "Hercules", "--json")
	if err != nil {
		t.Fatalf("match command failed: %v", err)
	}
	var result matchOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if result.Match != nil {
		t.Fatalf("expected no match, got %+v", result.Match)
	}
}

func TestMatchCommandRequiresName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := runCommand(t, "[]", "match"); err == nil {
		t.Fatal("expected error without --name")
	}
}

func TestCleanCommand(t *testing.T) {
	out, err := runCommand(t, "", "clean", "Foo: Bar!")
	if err != nil {
		t.Fatalf("clean command failed: %v", err)
	}
	if out != "Foo Bar \n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCleanCommandStripAndTitle(t *testing.T) {
	out, err := runCommand(t, "", "clean", "hercules: reborn", "--strip", "--title")
	if err != nil {
		t.Fatalf("clean command failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if lines[1] != "hercules reborn" {
		t.Fatalf("unexpected stripped form: %q", lines[1])
	}
	if lines[2] != "Hercules Reborn" {
		t.Fatalf("unexpected title form: %q", lines[2])
	}
}

func TestLangCommand(t *testing.T) {
	out, err := runCommand(t, "", "lang", "de-ch")
	if err != nil {
		t.Fatalf("lang command failed: %v", err)
	}
	if !strings.Contains(out, "normalized:      de") {
		t.Fatalf("missing normalized tag: %q", out)
	}
	if !strings.Contains(out, "image languages: de,null,en") {
		t.Fatalf("missing image languages: %q", out)
	}
	if !strings.Contains(out, "display name:    German") {
		t.Fatalf("missing display name: %q", out)
	}
}

func TestLangCommandAdjust(t *testing.T) {
	out, err := runCommand(t, "", "lang", "en", "--request", "en-US")
	if err != nil {
		t.Fatalf("lang command failed: %v", err)
	}
	if !strings.Contains(out, "adjusted:        en-US") {
		t.Fatalf("missing adjusted tag: %q", out)
	}
}

func TestTaxonomyCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"role director", []string{"role", "Production", "Executive Director"}, "director\n"},
		{"role unknown", []string{"role", "Sound", "Mixer"}, "unknown\n"},
		{"trailer true", []string{"trailer", "YouTube", "Teaser"}, "true\n"},
		{"trailer false", []string{"trailer", "Vimeo", "Trailer"}, "false\n"},
		{"rating us", []string{"rating", "US", "TV-14"}, "TV-14\n"},
		{"rating germany", []string{"rating", "DE", "16"}, "FSK-16\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, "", tt.args...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			if out != tt.expected {
				t.Errorf("output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := runCommand(t, "", "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "reelmatch", "config.toml")); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCommand(t, "", "config", "init"); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, err = runCommand(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "language = 'en-US'") && !strings.Contains(out, `language = "en-US"`) {
		t.Fatalf("unexpected show output: %q", out)
	}
}
