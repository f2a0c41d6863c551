package errors

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "cloud", false},
		{"valid with space", "word cloud", false},
		{"valid unicode", "Größe", false},
		{"valid punctuation", "C++", false},
		{"valid max length", strings.Repeat("a", MaxWordLength), false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", MaxWordLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"tab", "foo\tbar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateWord(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	if err := ValidateWords([]string{"a", "b"}); err != nil {
		t.Errorf("valid words should pass: %v", err)
	}
	if err := ValidateWords(nil); err != nil {
		t.Errorf("empty list should pass: %v", err)
	}

	err := ValidateWords([]string{"a", "", "c"})
	if err == nil {
		t.Fatal("empty word should fail")
	}
	if !strings.Contains(err.Error(), "word 1") {
		t.Errorf("error should name the failing index: %v", err)
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"short", "#fff", false},
		{"long", "#1a2b3c", false},
		{"with alpha", "#1a2b3cff", false},
		{"uppercase", "#ABCDEF", false},

		{"empty", "", true},
		{"no hash", "ffffff", true},
		{"named", "red", true},
		{"bad digit", "#ggg", true},
		{"wrong length", "#ffff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePalette(t *testing.T) {
	if err := ValidatePalette([]string{"#000", "#ffffff"}); err != nil {
		t.Errorf("valid palette should pass: %v", err)
	}
	if err := ValidatePalette(nil); err == nil {
		t.Error("empty palette should fail")
	}
	if err := ValidatePalette([]string{"#000", "blue"}); !Is(err, ErrCodeInvalidColor) {
		t.Errorf("invalid entry should fail with INVALID_COLOR, got %v", err)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidConfig,
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidColor,
		ErrCodeFileNotFound,
		ErrCodeFontNotFound,
		ErrCodeMeasurement,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
