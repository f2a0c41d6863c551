package io

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

func TestReadWordsText(t *testing.T) {
	in := "# languages\nGo\n\n  Rust  \n#Zig\nC++\n"
	got, err := ReadWords(strings.NewReader(in), FormatText)
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if want := []string{"Go", "Rust", "C++"}; !slices.Equal(got, want) {
		t.Errorf("ReadWords = %q, want %q", got, want)
	}
}

func TestReadWordsJSON(t *testing.T) {
	got, err := ReadWords(strings.NewReader(`["Go", "Rust", "Zig"]`), FormatJSON)
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if want := []string{"Go", "Rust", "Zig"}; !slices.Equal(got, want) {
		t.Errorf("ReadWords = %q, want %q", got, want)
	}
}

func TestReadWordsErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
		code   errs.Code
		msg    string
	}{
		{"malformed json", `["a",`, FormatJSON, errs.ErrCodeInvalidInput, "decode"},
		{"json object", `{"words": []}`, FormatJSON, errs.ErrCodeInvalidInput, "decode"},
		{"empty json word", `["a", ""]`, FormatJSON, errs.ErrCodeInvalidInput, "word 1"},
		{"control char", "ok\nbad\x07word\n", FormatText, errs.ErrCodeInvalidInput, "line 2"},
		{"too long", strings.Repeat("x", errs.MaxWordLength+1), FormatText, errs.ErrCodeInvalidInput, "line 1"},
		{"unknown format", "a", "csv", errs.ErrCodeInvalidFormat, "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadWords(strings.NewReader(tt.input), tt.format)
			if !errs.Is(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"words.json": FormatJSON,
		"WORDS.JSON": FormatJSON,
		"words.txt":  FormatText,
		"words":      FormatText,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestImportWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	if err := os.WriteFile(path, []byte(`["alpha","beta"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportWords(path)
	if err != nil {
		t.Fatalf("ImportWords: %v", err)
	}
	if !slices.Equal(got, []string{"alpha", "beta"}) {
		t.Errorf("ImportWords = %q", got)
	}

	if _, err := ImportWords(filepath.Join(dir, "missing.txt")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestWriteWordsRoundTrip(t *testing.T) {
	words := []string{"Go", "Rust", "naïve"}
	for _, format := range []string{FormatText, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteWords(&buf, words, format); err != nil {
				t.Fatalf("WriteWords: %v", err)
			}
			got, err := ReadWords(&buf, format)
			if err != nil {
				t.Fatalf("ReadWords: %v", err)
			}
			if !slices.Equal(got, words) {
				t.Errorf("round trip = %q, want %q", got, words)
			}
		})
	}
}

func TestExportWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unplaced.txt")
	if err := ExportWords(path, []string{"one", "two"}); err != nil {
		t.Fatalf("ExportWords: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("file contents = %q", data)
	}
}
