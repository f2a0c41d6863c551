package sink

import (
	"context"
	"slices"

	"github.com/matzehuels/wordcast/pkg/cloud"
	"github.com/matzehuels/wordcast/pkg/render"
)

// RenderPDF renders the layout as PDF via SVG conversion. The font is always
// embedded so the converter does not need it installed.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, r cloud.Result, opts ...Option) ([]byte, error) {
	svg := RenderSVG(r, append(slices.Clip(opts), WithEmbeddedFont())...)
	return render.ToPDF(ctx, svg)
}
