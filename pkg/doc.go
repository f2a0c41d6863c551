// Package pkg provides the core libraries for Wordcast word-cloud layout.
//
// # Overview
//
// Wordcast sizes a list of words by rank and places them one by one along an
// Archimedean spiral around the canvas center, committing each word at the
// first position whose padded bounding box overlaps nothing placed before.
// The pkg directory is organized into these areas:
//
//  1. [cloud] - The placement engine (sizing, spiral, overlap, budget)
//  2. [measure] - Text measurers (OpenType metrics, estimates, fixed boxes)
//  3. [fonts] - Embedded font registry
//  4. [render] - Output sinks (SVG, PNG, PDF, JSON) and PDF conversion
//  5. [pipeline] - Orchestration (validate → layout → render)
//  6. [io] - Word list import and export
//
// # Architecture
//
// The typical data flow through Wordcast:
//
//	Word list (text or JSON)
//	         ↓
//	    [io] package (read and validate words)
//	         ↓
//	    [cloud] package (size, then place along the spiral)
//	         ↓
//	    [render/sink] package (draw placed words)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Lay out and render a word list:
//
//	runner := pipeline.NewRunner(nil, logger)
//	res, err := runner.Execute(ctx, words, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	os.WriteFile("cloud.svg", res.Artifacts[pipeline.FormatSVG], 0o644)
//
// Or use the engine directly with your own measurer:
//
//	cfg, _ := cloud.NewConfig(cloud.WithOrigin(400, 300))
//	res, err := cloud.Layout(ctx, words, cfg, measure.NewFont(nil), rng)
//
// # Supporting Packages
//
//   - [errors] - Structured error codes
//   - [observability] - Metrics and logging hooks
//   - [buildinfo] - Version information
package pkg
