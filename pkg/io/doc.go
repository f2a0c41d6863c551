// Package io reads and writes word lists.
//
// # Formats
//
// Two formats are supported:
//
//   - text: one word per line. Surrounding whitespace is trimmed; blank
//     lines and lines starting with '#' are skipped.
//   - json: an array of strings.
//
// Example text file:
//
//	# languages
//	Go
//	Rust
//	Zig
//
// The same list as JSON:
//
//	["Go", "Rust", "Zig"]
//
// # Validation
//
// Every imported word passes [errors.ValidateWord]. The first invalid word
// fails the import with an INVALID_INPUT error naming its line (text) or
// index (json).
//
// [errors.ValidateWord]: github.com/matzehuels/wordcast/pkg/errors.ValidateWord
package io
