package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wordcast/pkg/fonts"
	"github.com/matzehuels/wordcast/pkg/render/sink"
)

// Runner encapsulates pipeline execution.
// Both CLI and API use this to avoid duplicating layout and render logic.
//
// The Runner is stateless except for the font registry and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Fonts  *fonts.Registry
	Logger *log.Logger
}

// NewRunner creates a runner with the given font registry and logger.
// If reg is nil, [fonts.Default] is used.
// If logger is nil, log output is discarded.
func NewRunner(reg *fonts.Registry, logger *log.Logger) *Runner {
	if reg == nil {
		reg = fonts.Default()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Fonts:  reg,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, words []string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:       uuid.NewString(),
		Fingerprint: Fingerprint(words, opts),
	}
	logger := opts.Logger.With("run", result.RunID)
	opts.Logger = logger

	// Stage 1: Layout
	opts.enter(StageLayout)
	res, layoutTime, err := r.layout(ctx, words, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Cloud = res
	result.Stats = Stats{
		Words:           len(words),
		Placed:          len(res.Placed),
		Unplaced:        len(res.Unplaced),
		Evaluations:     res.Evaluations,
		BudgetExhausted: res.BudgetExhausted,
		LayoutTime:      layoutTime,
	}

	logger.Info("computed layout",
		"words", len(words),
		"placed", result.Stats.Placed,
		"unplaced", result.Stats.Unplaced,
		"duration", layoutTime)

	// Stage 2: Render
	opts.enter(StageRender)
	artifacts, renderTime, err := r.render(ctx, res, opts, sink.WithRun(opts.Seed, result.RunID))
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = renderTime

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", renderTime)

	return result, nil
}

func (o Options) enter(stage string) {
	if o.OnStage != nil {
		o.OnStage(stage)
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
