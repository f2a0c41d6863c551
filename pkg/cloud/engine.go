package cloud

import (
	"context"
	"math"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// Layout places words on the surface described by cfg.
//
// Words are sized with [Size] and then processed strictly in that order. For
// each word the measurer is asked once for its dimensions, after which spiral
// candidates around cfg.Origin are tested until one does not overlap any
// previously placed box. A word that exhausts cfg.SpreadLimit candidates is
// reported in [Result.Unplaced]; this is not an error.
//
// Layout fails fast with an INVALID_CONFIG error before placing anything if
// cfg is invalid or ctx, m or rng is nil. A measurer failure aborts the run
// with a MEASUREMENT_FAILED error and no partial result. ctx is checked
// between words; on cancellation ctx.Err() is returned unchanged.
//
// Every call builds its own placement state, so concurrent calls are safe as
// long as m is.
func Layout(ctx context.Context, words []string, cfg Config, m Measurer, rng Rand) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if m == nil {
		return Result{}, errs.New(errs.ErrCodeInvalidConfig, "measurer is required")
	}
	if rng == nil {
		return Result{}, errs.New(errs.ErrCodeInvalidConfig, "random source is required")
	}
	if ctx == nil {
		return Result{}, errs.New(errs.ErrCodeInvalidConfig, "context is required")
	}

	input := make([]Word, len(words))
	for i, w := range words {
		input[i] = Word{Text: w}
	}
	sized, err := Size(input, cfg, rng)
	if err != nil {
		return Result{}, err
	}

	e := &engine{cfg: cfg, measurer: m, rng: rng, state: newState(cfg)}
	res := Result{
		Placed:   make([]PlacedWord, 0, len(sized)),
		Unplaced: make([]Word, 0),
	}

	for i, w := range sized {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if e.exhausted() {
			for _, rest := range sized[i:] {
				res.Unplaced = append(res.Unplaced, rest.Word)
			}
			res.BudgetExhausted = true
			break
		}

		pw, out, err := e.place(w)
		if err != nil {
			return Result{}, err
		}
		switch out {
		case placed:
			res.Placed = append(res.Placed, pw)
		case outOfBudget:
			res.BudgetExhausted = true
			fallthrough
		default:
			res.Unplaced = append(res.Unplaced, w.Word)
		}
	}

	res.Evaluations = e.evaluations
	return res, nil
}

type engine struct {
	cfg         Config
	measurer    Measurer
	rng         Rand
	state       *state
	evaluations int
	nextColor   int
}

// outcome is the terminal state of a word's spiral search.
type outcome int

const (
	placed outcome = iota
	unplaced
	outOfBudget
)

func (e *engine) exhausted() bool {
	return e.cfg.MaxEvaluations > 0 && e.evaluations >= e.cfg.MaxEvaluations
}

// place runs the spiral search for a single word.
func (e *engine) place(w SizedWord) (PlacedWord, outcome, error) {
	width, height, err := e.measurer.Measure(w.Text, w.FontSize, e.cfg.FontFamily)
	if err != nil {
		return PlacedWord{}, unplaced, errs.Wrap(errs.ErrCodeMeasurement, err, "measure %q at size %d", w.Text, w.FontSize)
	}
	if !validDimension(width) || !validDimension(height) {
		return PlacedWord{}, unplaced, errs.New(errs.ErrCodeMeasurement, "measure %q at size %d: invalid dimensions %vx%v", w.Text, w.FontSize, width, height)
	}

	for step := 0; step < e.cfg.SpreadLimit; step++ {
		if e.exhausted() {
			return PlacedWord{}, outOfBudget, nil
		}
		e.evaluations++

		c := CandidateAt(e.cfg.Origin, step)
		box := BoxAt(c.X, c.Y, width, height)
		if !e.state.safe(box) {
			continue
		}

		e.state.commit(box)
		return PlacedWord{SizedWord: w, Box: box, Color: e.color()}, placed, nil
	}
	return PlacedWord{}, unplaced, nil
}

func (e *engine) color() ColorID {
	if e.cfg.ColorMode == ColorRandom {
		return e.cfg.Palette[e.rng.IntN(len(e.cfg.Palette))]
	}
	c := e.cfg.Palette[e.nextColor%len(e.cfg.Palette)]
	e.nextColor++
	return c
}

func validDimension(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
