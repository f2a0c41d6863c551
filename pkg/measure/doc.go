// Package measure provides [cloud.Measurer] implementations.
//
//   - [Font] measures with real glyph metrics from a [fonts.Registry].
//   - [Estimate] approximates dimensions from the rune count; it never fails
//     and needs no font data.
//   - [Fixed] returns the same box for every word.
//
// [ByName] selects a measurer from its configuration name.
package measure
