package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxWordLength is the longest word, in bytes, accepted for layout.
const MaxWordLength = 256

// ValidateWord validates a single word-cloud label.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only words
//   - No control characters (newlines, tabs, null bytes)
//   - Maximum length of 256 bytes
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}

	if len(word) > MaxWordLength {
		return New(ErrCodeInvalidInput, "word too long (max %d bytes)", MaxWordLength)
	}

	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "word %q contains control characters", word)
		}
	}

	return nil
}

// ValidateWords validates every word and reports the index of the first failure.
func ValidateWords(words []string) error {
	for i, w := range words {
		if err := ValidateWord(w); err != nil {
			return Wrap(ErrCodeInvalidInput, err, "word %d", i)
		}
	}
	return nil
}

// hexColorRegex matches #rgb, #rrggbb and #rrggbbaa.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateHexColor validates a CSS hex color as used by the renderers.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q (want #rgb, #rrggbb or #rrggbbaa)", color)
	}
	return nil
}

// ValidatePalette validates that a palette is non-empty and made of hex colors.
func ValidatePalette(palette []string) error {
	if len(palette) == 0 {
		return New(ErrCodeInvalidColor, "palette cannot be empty")
	}
	for _, c := range palette {
		if err := ValidateHexColor(c); err != nil {
			return err
		}
	}
	return nil
}
