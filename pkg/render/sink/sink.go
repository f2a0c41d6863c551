package sink

import (
	"context"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

var contentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// ContentType returns the MIME type for format, or "application/octet-stream"
// for unknown formats.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Render dispatches to the renderer for format.
func Render(ctx context.Context, format string, r cloud.Result, opts ...Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(r, opts...), nil
	case FormatPNG:
		return RenderPNG(r, opts...)
	case FormatPDF:
		return RenderPDF(ctx, r, opts...)
	case FormatJSON:
		return RenderJSON(r, opts...)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format: %q (must be svg, png, pdf, or json)", format)
	}
}
