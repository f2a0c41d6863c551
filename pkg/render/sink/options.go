package sink

import (
	"github.com/matzehuels/wordcast/pkg/fonts"
)

// Defaults applied by every renderer.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#ffffff"
	DefaultScale      = 2.0

	boxStroke = "#e41a1c"
)

// Option configures a renderer. All formats accept the same options and
// ignore the ones they have no use for.
type Option func(*settings)

type settings struct {
	width, height float64
	fontFamily    string
	background    string
	showBoxes     bool
	xPad, yPad    float64
	embedFont     bool
	registry      *fonts.Registry
	scale         float64
	seed          uint64
	runID         string
}

// WithFrame sets the canvas size in layout units.
func WithFrame(width, height float64) Option {
	return func(s *settings) { s.width, s.height = width, height }
}

// WithFontFamily sets the family the words are drawn with. It should match
// the family the layout was measured with.
func WithFontFamily(family string) Option {
	return func(s *settings) { s.fontFamily = family }
}

// WithBackground sets the canvas fill color. An empty string leaves the
// background transparent.
func WithBackground(hex string) Option {
	return func(s *settings) { s.background = hex }
}

// WithBoxes outlines each word's bounding box expanded by the layout padding.
func WithBoxes(xPad, yPad float64) Option {
	return func(s *settings) { s.showBoxes, s.xPad, s.yPad = true, xPad, yPad }
}

// WithEmbeddedFont inlines the font as a base64 @font-face rule so the SVG
// renders identically without the font installed.
func WithEmbeddedFont() Option {
	return func(s *settings) { s.embedFont = true }
}

// WithFonts sets the registry used for PNG faces and embedded SVG fonts.
func WithFonts(reg *fonts.Registry) Option {
	return func(s *settings) { s.registry = reg }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(scale float64) Option {
	return func(s *settings) { s.scale = scale }
}

// WithRun records the seed and run ID in JSON output.
func WithRun(seed uint64, runID string) Option {
	return func(s *settings) { s.seed, s.runID = seed, runID }
}

func newSettings(opts ...Option) settings {
	s := settings{
		width:      DefaultWidth,
		height:     DefaultHeight,
		fontFamily: fonts.DefaultFamily,
		background: DefaultBackground,
		scale:      DefaultScale,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.registry == nil {
		s.registry = fonts.Default()
	}
	if s.scale <= 0 {
		s.scale = DefaultScale
	}
	return s
}
