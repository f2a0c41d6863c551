package cloud

import (
	"slices"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// Default configuration values.
const (
	DefaultMinFontSize = 8
	DefaultMaxFontSize = 16
	DefaultSpreadLimit = 365
	DefaultXPadding    = 2.0
	DefaultYPadding    = 2.0
	DefaultFontFamily  = "Go"
	DefaultColor       = ColorID("#000000")
)

// ColorMode selects how palette entries are assigned to placed words.
type ColorMode int

const (
	// ColorRoundRobin cycles through the palette with one counter shared by
	// all placed words. Output is reproducible without a seed.
	ColorRoundRobin ColorMode = iota

	// ColorRandom picks a palette entry using the run's random source.
	ColorRandom
)

// String returns the mode name used in options files and flags.
func (m ColorMode) String() string {
	switch m {
	case ColorRoundRobin:
		return "round-robin"
	case ColorRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseColorMode parses "round-robin" (or "") and "random".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "round-robin":
		return ColorRoundRobin, nil
	case "random":
		return ColorRandom, nil
	default:
		return 0, errs.New(errs.ErrCodeInvalidConfig, "invalid color mode: %q (must be 'round-robin' or 'random')", s)
	}
}

// Config holds the layout parameters for one run. Build it with [NewConfig];
// the engine never modifies it.
type Config struct {
	MinFontSize int
	MaxFontSize int

	// XPadding and YPadding expand every box on each side before overlap tests.
	XPadding float64
	YPadding float64

	// SpreadLimit is the number of spiral candidates tried per word.
	SpreadLimit int

	Palette    []ColorID
	FontFamily string

	// Origin is the spiral center, usually the middle of the container.
	Origin Point

	ColorMode ColorMode

	// MaxEvaluations caps candidate tests across the run. Zero means unlimited.
	MaxEvaluations int
}

// Option configures a [Config].
type Option func(*Config)

// WithFontSizes sets the inclusive font size range.
func WithFontSizes(minSize, maxSize int) Option {
	return func(c *Config) { c.MinFontSize, c.MaxFontSize = minSize, maxSize }
}

// WithPadding sets the horizontal and vertical padding around each box.
func WithPadding(x, y float64) Option {
	return func(c *Config) { c.XPadding, c.YPadding = x, y }
}

// WithSpreadLimit sets the number of spiral steps tried per word.
func WithSpreadLimit(n int) Option {
	return func(c *Config) { c.SpreadLimit = n }
}

// WithPalette sets the colors assigned to placed words.
func WithPalette(colors ...ColorID) Option {
	return func(c *Config) { c.Palette = slices.Clone(colors) }
}

// WithFontFamily sets the font family passed to the measurer.
func WithFontFamily(family string) Option {
	return func(c *Config) { c.FontFamily = family }
}

// WithOrigin sets the spiral center.
func WithOrigin(x, y float64) Option {
	return func(c *Config) { c.Origin = Point{X: x, Y: y} }
}

// WithColorMode sets the color assignment strategy.
func WithColorMode(m ColorMode) Option {
	return func(c *Config) { c.ColorMode = m }
}

// WithMaxEvaluations caps the total number of candidate tests per run.
func WithMaxEvaluations(n int) Option {
	return func(c *Config) { c.MaxEvaluations = n }
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		MinFontSize: DefaultMinFontSize,
		MaxFontSize: DefaultMaxFontSize,
		XPadding:    DefaultXPadding,
		YPadding:    DefaultYPadding,
		SpreadLimit: DefaultSpreadLimit,
		Palette:     []ColorID{DefaultColor},
		FontFamily:  DefaultFontFamily,
	}
}

// NewConfig applies opts on top of [DefaultConfig] and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration invariants. All failures carry
// [errs.ErrCodeInvalidConfig].
func (c Config) Validate() error {
	if c.MinFontSize < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "min font size must be positive, got %d", c.MinFontSize)
	}
	if c.MinFontSize > c.MaxFontSize {
		return errs.New(errs.ErrCodeInvalidConfig, "min font size %d exceeds max font size %d", c.MinFontSize, c.MaxFontSize)
	}
	if c.SpreadLimit < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "spread limit must be at least 1, got %d", c.SpreadLimit)
	}
	if len(c.Palette) == 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "color palette cannot be empty")
	}
	if c.XPadding < 0 || c.YPadding < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "padding cannot be negative (x=%v, y=%v)", c.XPadding, c.YPadding)
	}
	if c.MaxEvaluations < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "max evaluations cannot be negative, got %d", c.MaxEvaluations)
	}
	if c.ColorMode != ColorRoundRobin && c.ColorMode != ColorRandom {
		return errs.New(errs.ErrCodeInvalidConfig, "unknown color mode %d", c.ColorMode)
	}
	return nil
}
