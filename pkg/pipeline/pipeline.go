// Package pipeline provides the layout → render pipeline for Wordcast.
//
// This package implements the complete pipeline that is used by both the CLI
// and the HTTP API. By centralizing this logic, both entry points share
// defaults, validation, and logging.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Size and place the words with [cloud.Layout]
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{
//	    MinFontSize: 12,
//	    MaxFontSize: 48,
//	    Formats:     []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, words, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	res, err := runner.Layout(ctx, words, opts)
//
//	// Render an existing layout
//	artifacts, err := runner.Render(ctx, res, opts)
//
// Options can also be loaded from TOML or YAML files with [LoadOptionsFile].
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zeebo/xxh3"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/measure"
	"github.com/matzehuels/wordcast/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultBackground is the default canvas color.
	DefaultBackground = "#ffffff"

	// BackgroundNone disables the canvas fill.
	BackgroundNone = "none"

	// DefaultMeasurer measures words with real font metrics.
	DefaultMeasurer = measure.NameFont

	// DefaultScale is the default PNG scale factor.
	DefaultScale = sink.DefaultScale

	// MaxFrame bounds the frame width and height, including any PNG scale.
	MaxFrame = 16384.0
)

// Stages reported to [Options.OnStage].
const (
	StageLayout = "layout"
	StageRender = "render"
)

// Format constants for output formats.
const (
	FormatSVG  = sink.FormatSVG
	FormatPNG  = sink.FormatPNG
	FormatPDF  = sink.FormatPDF
	FormatJSON = sink.FormatJSON
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests and TOML or YAML
// for options files. Zero values select the defaults.
type Options struct {
	// Layout options
	MinFontSize    int      `json:"min_font_size,omitempty" toml:"min_font_size" yaml:"min_font_size"`
	MaxFontSize    int      `json:"max_font_size,omitempty" toml:"max_font_size" yaml:"max_font_size"`
	PaddingX       *float64 `json:"padding_x,omitempty" toml:"padding_x" yaml:"padding_x"` // nil selects the default
	PaddingY       *float64 `json:"padding_y,omitempty" toml:"padding_y" yaml:"padding_y"`
	SpreadLimit    int      `json:"spread_limit,omitempty" toml:"spread_limit" yaml:"spread_limit"`
	Palette        []string `json:"palette,omitempty" toml:"palette" yaml:"palette"`
	FontFamily     string   `json:"font_family,omitempty" toml:"font_family" yaml:"font_family"`
	ColorMode      string   `json:"color_mode,omitempty" toml:"color_mode" yaml:"color_mode"`
	MaxEvaluations int      `json:"max_evaluations,omitempty" toml:"max_evaluations" yaml:"max_evaluations"`
	Measurer       string   `json:"measurer,omitempty" toml:"measurer" yaml:"measurer"`
	Width          float64  `json:"width,omitempty" toml:"width" yaml:"width"`
	Height         float64  `json:"height,omitempty" toml:"height" yaml:"height"`
	Seed           uint64   `json:"seed,omitempty" toml:"seed" yaml:"seed"`

	// Render options
	Formats    []string `json:"formats,omitempty" toml:"formats" yaml:"formats"`
	ShowBoxes  bool     `json:"show_boxes,omitempty" toml:"show_boxes" yaml:"show_boxes"`
	Background string   `json:"background,omitempty" toml:"background" yaml:"background"`
	EmbedFont  bool     `json:"embed_font,omitempty" toml:"embed_font" yaml:"embed_font"`
	Scale      float64  `json:"scale,omitempty" toml:"scale" yaml:"scale"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" yaml:"-"`

	// OnStage, when set, is called as [Runner.Execute] enters each stage.
	OnStage func(stage string) `json:"-" toml:"-" yaml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and JSON output.
	RunID string

	// Fingerprint is the content hash of the words and options. Identical
	// inputs always produce the same fingerprint.
	Fingerprint string

	// Cloud is the computed layout.
	Cloud cloud.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Words           int
	Placed          int
	Unplaced        int
	Evaluations     int
	BudgetExhausted bool
	LayoutTime      time.Duration
	RenderTime      time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateColorMode checks that a color mode name is valid.
func ValidateColorMode(mode string) error {
	_, err := cloud.ParseColorMode(mode)
	return err
}

// ValidateMeasurer checks that a measurer name is valid.
func ValidateMeasurer(name string) error {
	if !slices.Contains(measure.Names, name) {
		return errs.New(errs.ErrCodeInvalidConfig, "invalid measurer: %q (must be one of: font, estimate)", name)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued fields with their defaults. Layout defaults
// that live in [cloud.DefaultConfig] are applied by [Options.CloudConfig].
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Measurer == "" {
		o.Measurer = DefaultMeasurer
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options, including the derived layout configuration.
func (o *Options) Validate() error {
	if !finite(o.Width) || !finite(o.Height) || o.Width <= 0 || o.Height <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "frame must be positive, got %vx%v", o.Width, o.Height)
	}
	if !finite(o.Scale) || o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "scale cannot be negative, got %v", o.Scale)
	}
	scale := 1.0
	if slices.Contains(o.Formats, FormatPNG) && o.Scale > 1 {
		scale = o.Scale
	}
	if o.Width*scale > MaxFrame || o.Height*scale > MaxFrame {
		return errs.New(errs.ErrCodeInvalidConfig, "frame %vx%v at scale %v exceeds %v pixels", o.Width, o.Height, scale, MaxFrame)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateColorMode(o.ColorMode); err != nil {
		return err
	}
	if err := ValidateMeasurer(o.Measurer); err != nil {
		return err
	}
	if len(o.Palette) > 0 {
		if err := errs.ValidatePalette(o.Palette); err != nil {
			return err
		}
	}
	if o.Background != "" && o.Background != BackgroundNone {
		if err := errs.ValidateHexColor(o.Background); err != nil {
			return err
		}
	}
	_, err := o.CloudConfig()
	return err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateAndSetDefaults applies defaults and validates the result.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// CloudConfig builds the layout configuration. The spiral origin is the
// frame center.
func (o *Options) CloudConfig() (cloud.Config, error) {
	def := cloud.DefaultConfig()
	minSize, maxSize := def.MinFontSize, def.MaxFontSize
	if o.MinFontSize != 0 {
		minSize = o.MinFontSize
	}
	if o.MaxFontSize != 0 {
		maxSize = o.MaxFontSize
	}
	xPad, yPad := def.XPadding, def.YPadding
	if o.PaddingX != nil {
		xPad = *o.PaddingX
	}
	if o.PaddingY != nil {
		yPad = *o.PaddingY
	}

	mode, err := cloud.ParseColorMode(o.ColorMode)
	if err != nil {
		return cloud.Config{}, err
	}

	opts := []cloud.Option{
		cloud.WithFontSizes(minSize, maxSize),
		cloud.WithPadding(xPad, yPad),
		cloud.WithOrigin(o.Width/2, o.Height/2),
		cloud.WithColorMode(mode),
		cloud.WithMaxEvaluations(o.MaxEvaluations),
	}
	if o.SpreadLimit != 0 {
		opts = append(opts, cloud.WithSpreadLimit(o.SpreadLimit))
	}
	if o.FontFamily != "" {
		opts = append(opts, cloud.WithFontFamily(o.FontFamily))
	}
	if len(o.Palette) > 0 {
		palette := make([]cloud.ColorID, len(o.Palette))
		for i, c := range o.Palette {
			palette[i] = cloud.ColorID(c)
		}
		opts = append(opts, cloud.WithPalette(palette...))
	}
	return cloud.NewConfig(opts...)
}

// SinkOptions returns the renderer options matching these pipeline options.
func (o *Options) SinkOptions(cfg cloud.Config) []sink.Option {
	bg := o.Background
	if bg == BackgroundNone {
		bg = ""
	}
	opts := []sink.Option{
		sink.WithFrame(o.Width, o.Height),
		sink.WithFontFamily(cfg.FontFamily),
		sink.WithBackground(bg),
		sink.WithScale(o.Scale),
	}
	if o.ShowBoxes {
		opts = append(opts, sink.WithBoxes(cfg.XPadding, cfg.YPadding))
	}
	if o.EmbedFont {
		opts = append(opts, sink.WithEmbeddedFont())
	}
	return opts
}

// Fingerprint hashes words together with every serialized option. It is
// stable across processes and suitable as an HTTP ETag.
func Fingerprint(words []string, opts Options) string {
	data, err := json.Marshal(struct {
		Words   []string `json:"words"`
		Options Options  `json:"options"`
	}{words, opts})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}
