package measure

import (
	"unicode/utf8"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/fonts"
)

// Measurer names accepted by [ByName].
const (
	NameFont     = "font"
	NameEstimate = "estimate"
)

// Names lists the measurers accepted by [ByName].
var Names = []string{NameFont, NameEstimate}

// Estimate ratios used when the corresponding field is zero.
const (
	DefaultCharWidth  = 0.55
	DefaultLineHeight = 1.2
)

// Estimate approximates text dimensions without font data: width is
// runes × size × CharWidth and height is size × LineHeight.
type Estimate struct {
	CharWidth  float64
	LineHeight float64
}

// Measure implements [cloud.Measurer]. It never fails.
func (e Estimate) Measure(text string, fontSize int, _ string) (float64, float64, error) {
	cw, lh := e.CharWidth, e.LineHeight
	if cw <= 0 {
		cw = DefaultCharWidth
	}
	if lh <= 0 {
		lh = DefaultLineHeight
	}
	size := float64(fontSize)
	return float64(utf8.RuneCountInString(text)) * size * cw, size * lh, nil
}

// Fixed reports the same dimensions for every word.
type Fixed struct {
	Width, Height float64
}

// Measure implements [cloud.Measurer].
func (f Fixed) Measure(string, int, string) (float64, float64, error) {
	return f.Width, f.Height, nil
}

// ByName returns the measurer registered under name. reg is only used by
// the font measurer; nil selects [fonts.Default].
func ByName(name string, reg *fonts.Registry) (cloud.Measurer, error) {
	switch name {
	case NameFont:
		return NewFont(reg), nil
	case NameEstimate:
		return Estimate{}, nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown measurer %q (must be 'font' or 'estimate')", name)
	}
}
