package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
)

var sampleWords = []string{"go", "channels", "goroutines", "interfaces", "generics", "modules", "testing", "context"}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateColorMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"", false},
		{"round-robin", false},
		{"random", false},
		{"rainbow", true},
	}

	for _, tt := range tests {
		err := ValidateColorMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateColorMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
	}
}

func TestValidateMeasurer(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"font", false},
		{"estimate", false},
		{"", true},
		{"ruler", true},
	}

	for _, tt := range tests {
		err := ValidateMeasurer(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMeasurer(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()

	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("frame = %vx%v", o.Width, o.Height)
	}
	if o.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", o.Seed, DefaultSeed)
	}
	if !slices.Equal(o.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v", o.Formats)
	}
	if o.Measurer != DefaultMeasurer || o.Background != DefaultBackground || o.Scale != DefaultScale {
		t.Errorf("unexpected defaults %+v", o)
	}
	if o.Logger == nil {
		t.Error("Logger not defaulted")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"bad format", Options{Formats: []string{"gif"}}, errs.ErrCodeInvalidFormat},
		{"bad color mode", Options{ColorMode: "rainbow"}, errs.ErrCodeInvalidConfig},
		{"bad measurer", Options{Measurer: "ruler"}, errs.ErrCodeInvalidConfig},
		{"bad palette", Options{Palette: []string{"#fff", "red"}}, errs.ErrCodeInvalidColor},
		{"bad background", Options{Background: "white"}, errs.ErrCodeInvalidColor},
		{"min above max", Options{MinFontSize: 30, MaxFontSize: 10}, errs.ErrCodeInvalidConfig},
		{"negative frame", Options{Width: -1}, errs.ErrCodeInvalidConfig},
		{"negative budget", Options{MaxEvaluations: -1}, errs.ErrCodeInvalidConfig},
		{"huge frame", Options{Width: 1e12, Height: 1e12, Formats: []string{FormatPNG}}, errs.ErrCodeInvalidConfig},
		{"wide svg", Options{Width: MaxFrame + 1}, errs.ErrCodeInvalidConfig},
		{"scaled past limit", Options{Width: 10000, Scale: 2, Formats: []string{FormatPNG}}, errs.ErrCodeInvalidConfig},
		{"nan width", Options{Width: math.NaN()}, errs.ErrCodeInvalidConfig},
		{"infinite height", Options{Height: math.Inf(1)}, errs.ErrCodeInvalidConfig},
		{"nan scale", Options{Scale: math.NaN()}, errs.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errs.Is(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}

	ok := Options{Background: BackgroundNone, Palette: []string{"#1b9e77", "#d95f02"}}
	if err := ok.ValidateAndSetDefaults(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}

	// Scale only matters for raster output.
	vector := Options{Width: 10000, Scale: 2, Formats: []string{FormatSVG}}
	if err := vector.ValidateAndSetDefaults(); err != nil {
		t.Errorf("scaled svg rejected: %v", err)
	}
}

func TestCloudConfig(t *testing.T) {
	zero := 0.0
	o := Options{
		MinFontSize: 12,
		MaxFontSize: 40,
		PaddingX:    &zero,
		SpreadLimit: 100,
		Palette:     []string{"#111111", "#222222"},
		FontFamily:  "Go Mono",
		ColorMode:   "random",
	}
	o.SetDefaults()

	cfg, err := o.CloudConfig()
	if err != nil {
		t.Fatalf("CloudConfig: %v", err)
	}
	if cfg.MinFontSize != 12 || cfg.MaxFontSize != 40 || cfg.SpreadLimit != 100 {
		t.Errorf("unexpected sizes/limits %+v", cfg)
	}
	if cfg.XPadding != 0 || cfg.YPadding != cloud.DefaultYPadding {
		t.Errorf("padding = %v, %v", cfg.XPadding, cfg.YPadding)
	}
	if cfg.Origin != (cloud.Point{X: 400, Y: 300}) {
		t.Errorf("Origin = %+v, want frame center", cfg.Origin)
	}
	if cfg.ColorMode != cloud.ColorRandom || cfg.FontFamily != "Go Mono" || len(cfg.Palette) != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint(sampleWords, Options{Seed: 1})
	b := Fingerprint(sampleWords, Options{Seed: 1})
	if a == "" || a != b {
		t.Errorf("fingerprint not stable: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("fingerprint %q should be 16 hex chars", a)
	}
	if c := Fingerprint(sampleWords, Options{Seed: 2}); c == a {
		t.Error("different options share a fingerprint")
	}
	if d := Fingerprint(sampleWords[1:], Options{Seed: 1}); d == a {
		t.Error("different words share a fingerprint")
	}
}

func TestRunnerExecute(t *testing.T) {
	var logs bytes.Buffer
	runner := NewRunner(nil, log.NewWithOptions(&logs, log.Options{}))

	opts := Options{Formats: []string{FormatSVG, FormatJSON}, Measurer: "estimate"}
	result, err := runner.Execute(context.Background(), sampleWords, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.RunID == "" || result.Fingerprint == "" {
		t.Errorf("missing identifiers: %+v", result)
	}
	if result.Stats.Words != len(sampleWords) || result.Stats.Placed+result.Stats.Unplaced != len(sampleWords) {
		t.Errorf("unexpected stats %+v", result.Stats)
	}
	if !bytes.HasPrefix(result.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact missing")
	}

	var out struct {
		RunID string `json:"run_id"`
		Seed  uint64 `json:"seed"`
	}
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &out); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if out.RunID != result.RunID || out.Seed != DefaultSeed {
		t.Errorf("json run info = %+v", out)
	}
	if !strings.Contains(logs.String(), "computed layout") {
		t.Errorf("runner logger not used:\n%s", logs.String())
	}
}

func TestRunnerStages(t *testing.T) {
	var stages []string
	opts := Options{Measurer: "estimate", OnStage: func(stage string) { stages = append(stages, stage) }}
	if _, err := NewRunner(nil, nil).Execute(context.Background(), sampleWords, opts); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := []string{StageLayout, StageRender}; !slices.Equal(stages, want) {
		t.Errorf("stages = %v, want %v", stages, want)
	}

	// The callback is not part of the fingerprint.
	if Fingerprint(sampleWords, opts) != Fingerprint(sampleWords, Options{Measurer: "estimate"}) {
		t.Error("OnStage changed the fingerprint")
	}
}

func TestRunnerDeterministic(t *testing.T) {
	runner := NewRunner(nil, nil)
	opts := Options{Seed: 7}

	a, err := runner.Layout(context.Background(), sampleWords, opts)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	b, err := runner.Layout(context.Background(), sampleWords, opts)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(a.Placed) != len(b.Placed) {
		t.Fatalf("placed %d vs %d", len(a.Placed), len(b.Placed))
	}
	for i := range a.Placed {
		if a.Placed[i] != b.Placed[i] {
			t.Errorf("placed[%d] differs: %+v vs %+v", i, a.Placed[i], b.Placed[i])
		}
	}
}

func TestRunnerRejectsInvalidWords(t *testing.T) {
	runner := NewRunner(nil, nil)
	_, err := runner.Execute(context.Background(), []string{"ok", " "}, Options{})
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil).Execute(ctx, sampleWords, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunnerUnknownFont(t *testing.T) {
	_, err := NewRunner(nil, nil).Layout(context.Background(), sampleWords, Options{FontFamily: "Nope"})
	if !errs.Is(err, errs.ErrCodeMeasurement) {
		t.Errorf("expected MEASUREMENT_FAILED, got %v", err)
	}
}

func TestLoadOptionsFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "cloud.toml")
	tomlData := `
min_font_size = 10
max_font_size = 60
padding_x = 0.0
palette = ["#1b9e77", "#d95f02"]
color_mode = "random"
formats = ["svg", "png"]
seed = 9
`
	if err := os.WriteFile(tomlPath, []byte(tomlData), 0o644); err != nil {
		t.Fatal(err)
	}

	yamlPath := filepath.Join(dir, "cloud.yaml")
	yamlData := `
min_font_size: 10
max_font_size: 60
padding_x: 0
palette: ["#1b9e77", "#d95f02"]
color_mode: random
formats: [svg, png]
seed: 9
`
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			o, err := LoadOptionsFile(path)
			if err != nil {
				t.Fatalf("LoadOptionsFile: %v", err)
			}
			if o.MinFontSize != 10 || o.MaxFontSize != 60 || o.Seed != 9 || o.ColorMode != "random" {
				t.Errorf("unexpected options %+v", o)
			}
			if o.PaddingX == nil || *o.PaddingX != 0 || o.PaddingY != nil {
				t.Errorf("padding = %v, %v", o.PaddingX, o.PaddingY)
			}
			if !slices.Equal(o.Formats, []string{"svg", "png"}) || len(o.Palette) != 2 {
				t.Errorf("unexpected lists %+v", o)
			}
			if err := o.ValidateAndSetDefaults(); err != nil {
				t.Errorf("loaded options invalid: %v", err)
			}
		})
	}
}

func TestLoadOptionsFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadOptionsFile(filepath.Join(dir, "cloud.ini")); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
	if _, err := LoadOptionsFile(filepath.Join(dir, "missing.toml")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND, got %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("min_font_size = [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptionsFile(bad); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}
