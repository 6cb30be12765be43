package markov

import (
	"math/rand/v2"
	"strings"
)

// DefaultMaxLength is the character cap used when WithMaxLength is not
// given.
const DefaultMaxLength = 100

// phraseOptions is used by the generation functions to configure default options.
type phraseOptions struct {
	maxLength int
}

// PhraseOption is a function that configures generation parameters. It's
// used as a variadic argument in Phrase and NewWalk.
type PhraseOption func(*phraseOptions)

// WithMaxLength sets the hard cap on the number of characters generated.
// Values below one are ignored. Generation may stop earlier when an End
// transition is sampled.
func WithMaxLength(n int) PhraseOption {
	return func(o *phraseOptions) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// Phrase generates one character sequence by weighted random walk over the
// model's transition matrix, starting from the Start sentinel. Each step
// samples the current element's row with probability proportional to the
// observed counts; sampling a character emits it and continues, sampling a
// sentinel ends the walk. Sentinels never appear in the output.
//
// A walk also ends, returning the output built so far, when the current
// element has no outgoing observations (an all-zero row is treated exactly
// like sampling End) or when the length cap is reached.
//
// The random source is supplied by the caller, so generation is
// reproducible given the same seed and model. A nil rng falls back to the
// shared top-level source.
func (m Model) Phrase(rng *rand.Rand, opts ...PhraseOption) string {
	walk := m.NewWalk(rng, opts...)
	var b strings.Builder
	for {
		r, ok := walk.Next()
		if !ok {
			return b.String()
		}
		b.WriteRune(r)
	}
}

// step samples the successor of the element at row. The boolean result is
// false when the walk should end: an End or Start sample, an all-zero row,
// or a current element with no index (whose fallback distribution is the
// single choice End).
func (m Model) step(current Element, intn func(int) int) (Element, bool) {
	row, ok := m.alpha.indexOf(current)
	if !ok {
		return End, false
	}
	total := m.mat.rowTotal(row)
	if total == 0 {
		// Never observed transitioning out; treated as an immediate End.
		return End, false
	}
	pick := intn(total)
	for col := 0; col < m.mat.dim; col++ {
		pick -= m.mat.at(row, col)
		if pick < 0 {
			e := m.alpha.at(col)
			return e, e.IsChar()
		}
	}
	// Unreachable: pick < total and the row sums to total.
	panic("markov: weighted sample fell off the end of a row")
}
