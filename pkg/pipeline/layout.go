package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/wordcast/pkg/cloud"
	errs "github.com/matzehuels/wordcast/pkg/errors"
	"github.com/matzehuels/wordcast/pkg/measure"
	"github.com/matzehuels/wordcast/pkg/observability"
)

// =============================================================================
// Layout Generation
// =============================================================================

// NewRand returns the random source used for a layout with the given seed.
// Every run gets its own source, so concurrent runs never share state.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Layout validates the words and options and computes the layout.
func (r *Runner) Layout(ctx context.Context, words []string, opts Options) (cloud.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return cloud.Result{}, err
	}
	res, _, err := r.layout(ctx, words, opts)
	return res, err
}

// layout runs the placement engine on validated options.
func (r *Runner) layout(ctx context.Context, words []string, opts Options) (cloud.Result, time.Duration, error) {
	if err := errs.ValidateWords(words); err != nil {
		return cloud.Result{}, 0, err
	}
	cfg, err := opts.CloudConfig()
	if err != nil {
		return cloud.Result{}, 0, err
	}
	m, err := measure.ByName(opts.Measurer, r.Fonts)
	if err != nil {
		return cloud.Result{}, 0, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(words))
	start := time.Now()

	res, err := cloud.Layout(ctx, words, cfg, m, NewRand(opts.Seed))
	elapsed := time.Since(start)

	hooks.OnLayoutComplete(ctx, observability.LayoutStats{
		Words:           len(words),
		Placed:          len(res.Placed),
		Unplaced:        len(res.Unplaced),
		Evaluations:     res.Evaluations,
		BudgetExhausted: res.BudgetExhausted,
	}, elapsed, err)
	if err != nil {
		return cloud.Result{}, elapsed, err
	}

	opts.Logger.Debug("placed words",
		"placed", len(res.Placed),
		"unplaced", len(res.Unplaced),
		"evaluations", res.Evaluations,
		"measurer", opts.Measurer)
	if res.BudgetExhausted {
		opts.Logger.Warn("evaluation budget exhausted", "max_evaluations", cfg.MaxEvaluations)
	}
	return res, elapsed, nil
}
