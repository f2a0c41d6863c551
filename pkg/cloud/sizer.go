package cloud

import (
	"cmp"
	"slices"

	errs "github.com/matzehuels/wordcast/pkg/errors"
)

// Rand is the random source used for font sizes and random color picks.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Size assigns every word a uniform random font size in
// [cfg.MinFontSize, cfg.MaxFontSize] and returns the words in placement order:
// descending font size, with ties kept in input order.
//
// Sizes are drawn in input order, so a seeded rng yields the same assignment
// for the same word list.
func Size(words []Word, cfg Config, rng Rand) ([]SizedWord, error) {
	if cfg.MinFontSize > cfg.MaxFontSize {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "min font size %d exceeds max font size %d", cfg.MinFontSize, cfg.MaxFontSize)
	}

	span := cfg.MaxFontSize - cfg.MinFontSize + 1
	sized := make([]SizedWord, len(words))
	for i, w := range words {
		sized[i] = SizedWord{Word: w, FontSize: cfg.MinFontSize + rng.IntN(span)}
	}

	slices.SortStableFunc(sized, func(a, b SizedWord) int {
		return cmp.Compare(b.FontSize, a.FontSize)
	})
	return sized, nil
}
