package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// Word list formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// FormatForPath infers the word list format from a file extension: ".json"
// is json, anything else is text.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatText
}

// ReadWords decodes a word list in the given format from r. ReadWords does
// not close r.
func ReadWords(r io.Reader, format string) ([]string, error) {
	switch format {
	case FormatText:
		return readText(r)
	case FormatJSON:
		return readJSON(r)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown word list format %q (must be 'text' or 'json')", format)
	}
}

// ImportWords reads the word list at path, inferring its format from the
// extension.
func ImportWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "word list %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadWords(f, FormatForPath(path))
}

func readText(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if err := errs.ValidateWord(w); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "line %d", line)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read word list")
	}
	return words, nil
}

func readJSON(r io.Reader) ([]string, error) {
	var words []string
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode word list")
	}
	if err := errs.ValidateWords(words); err != nil {
		return nil, err
	}
	return words, nil
}
