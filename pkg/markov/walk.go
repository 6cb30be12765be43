package markov

import "math/rand/v2"

// Walk is an in-progress generation that yields one character at a time.
// This allows a host to consume a sequence as it is produced, or to stop
// early, without the cost of building the whole phrase up front. A Walk is
// single-use and not safe for concurrent calls; start one Walk per
// consumer, each with its own random source.
type Walk struct {
	model   Model
	intn    func(int) int
	current Element
	steps   int
	max     int
	done    bool
}

// NewWalk starts a generation walk over the model with the same sampling
// and termination rules as Phrase. A nil rng falls back to the shared
// top-level source.
func (m Model) NewWalk(rng *rand.Rand, opts ...PhraseOption) *Walk {
	options := &phraseOptions{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(options)
	}
	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}
	return &Walk{
		model:   m,
		intn:    intn,
		current: Start,
		max:     options.maxLength,
	}
}

// Next returns the next generated character. It returns ok=false once the
// walk has ended, whether by sampling a sentinel, hitting an element with
// no outgoing observations, or reaching the length cap; after that every
// call returns ok=false.
func (w *Walk) Next() (r rune, ok bool) {
	if w.done || w.steps >= w.max {
		w.done = true
		return 0, false
	}
	next, ok := w.model.step(w.current, w.intn)
	if !ok {
		w.done = true
		return 0, false
	}
	w.current = next
	w.steps++
	r, _ = next.Rune()
	return r, true
}
