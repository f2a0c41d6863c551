package io

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// WriteWords encodes words in the given format and writes them to w. The
// output can be re-imported with [ReadWords].
func WriteWords(w io.Writer, words []string, format string) error {
	switch format {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, word := range words {
			bw.WriteString(word)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	case FormatJSON:
		if words == nil {
			words = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(words)
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown word list format %q (must be 'text' or 'json')", format)
	}
}

// ExportWords writes words to path, choosing the format from the extension.
func ExportWords(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := WriteWords(f, words, FormatForPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
