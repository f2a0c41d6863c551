// Package render converts rendered word clouds between output formats.
//
// [ToPDF] turns any SVG into PDF using the external rsvg-convert tool (from
// librsvg). The format renderers themselves live in the [sink] subpackage.
//
//	svg := sink.RenderSVG(result, sink.WithFrame(800, 600))
//	pdf, err := render.ToPDF(ctx, svg)
//
// When rsvg-convert is missing, ToPDF fails with an UNSUPPORTED error that
// carries installation instructions. [Available] checks for it up front.
//
// [sink]: github.com/matzehuels/wordcast/pkg/render/sink
package render
