// Package cloud lays out words of varying sizes on a 2D surface so that no
// two overlap.
//
// # Overview
//
// A layout run takes a word list, a [Config], a [Measurer] and a [Rand]:
//
//	words → Size (random font size, descending stable order)
//	      → spiral search per word (OffsetAt, Overlaps)
//	      → Result{Placed, Unplaced}
//
// Larger words are placed first and therefore compete for the space closest
// to the origin. Each word walks an Archimedean-style spiral whose radius grows
// by one unit and whose angle grows by one radian per step. The first
// candidate whose padded bounding box clears every committed box wins. A word
// that runs out of steps is reported as unplaced; that is a capacity limit,
// not an error.
//
// # Usage
//
//	cfg, err := cloud.NewConfig(
//	    cloud.WithFontSizes(12, 48),
//	    cloud.WithOrigin(400, 300),
//	    cloud.WithPalette("#1b9e77", "#d95f02", "#7570b3"),
//	)
//	if err != nil {
//	    return err
//	}
//	rng := rand.New(rand.NewPCG(42, 42^0xdeadbeef))
//	res, err := cloud.Layout(ctx, words, cfg, measurer, rng)
//
// # Coordinates
//
// Boxes use screen coordinates with y growing downward. The spiral itself is
// symmetric, so the choice only matters to renderers.
//
// # Determinism
//
// Given the same words, config, seed and a deterministic measurer, two runs
// produce identical results. Every run owns its placement state; nothing is
// shared between runs.
package cloud
