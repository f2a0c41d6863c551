// Package sink provides output format renderers for word cloud layouts.
//
// # Overview
//
// A "sink" transforms a computed [cloud.Result] into a final output format:
//
//   - SVG: one <text> element per placed word
//   - PNG: rasterized with fogleman/gg and the embedded Go fonts
//   - PDF: SVG converted by rsvg-convert
//   - JSON: layout data export for external tools
//
// Renderers draw each word centered on its bounding box, in placement order.
// They never recompute the layout; unplaced words are only listed in JSON.
//
// # Options
//
// All renderers share [Option]:
//
//   - [WithFrame]: canvas size (default 800x600)
//   - [WithFontFamily]: must match the family used for measuring
//   - [WithBackground]: canvas fill, "" for transparent
//   - [WithBoxes]: debug outlines of the padded boxes
//   - [WithEmbeddedFont]: inline the font into SVG output
//   - [WithFonts]: font registry (default [fonts.Default])
//   - [WithScale]: PNG resolution multiplier (default 2)
//   - [WithRun]: seed and run ID recorded in JSON
//
// Basic usage:
//
//	svg := sink.RenderSVG(res, sink.WithFrame(800, 600), sink.WithEmbeddedFont())
//	png, err := sink.RenderPNG(res, sink.WithScale(3))
//
// [RenderPDF] requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [fonts.Default]: github.com/matzehuels/wordcast/pkg/fonts.Default
package sink
