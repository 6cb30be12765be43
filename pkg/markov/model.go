package markov

import (
	"errors"
	"fmt"
)

// ErrAlphabetMismatch is returned by Merge when the two models were not
// built over the same alphabet.
var ErrAlphabetMismatch = errors.New("markov: models have different alphabets")

// Model is a first-order character transition model: an alphabet of
// elements and a square matrix counting observed adjacencies between them.
//
// A Model behaves as an immutable value. Training methods return a new
// Model and leave the receiver untouched, so any Model you hold can be
// read concurrently without locking. The zero Model has an empty alphabet;
// every lookup on it misses, so training it is a no-op and generation
// returns an empty string.
type Model struct {
	alpha *alphabet
	mat   *matrix
}

// Empty returns a model over the given character set with every transition
// count at zero. The alphabet becomes [Start, characters..., End], and the
// position of each element in that sequence is its id for the lifetime of
// the model. Characters are expected to be distinct; duplicates are kept
// as supplied.
func Empty(characters []rune) Model {
	alpha := newAlphabet(characters)
	return Model{alpha: alpha, mat: newMatrix(alpha.len())}
}

// Add returns a copy of the model with the count for the from->to
// transition incremented by one. If either element is not in the alphabet,
// the model is returned unchanged; observing a transition through an
// unknown endpoint is a deliberate no-op, not an error.
func (m Model) Add(from, to Element) Model {
	row, ok := m.alpha.indexOf(from)
	if !ok {
		return m
	}
	col, ok := m.alpha.indexOf(to)
	if !ok {
		return m
	}
	next := Model{alpha: m.alpha, mat: m.mat.clone()}
	next.mat.set(row, col, next.mat.at(row, col)+1)
	return next
}

// Count returns the observed number of from->to transitions, or zero when
// either element is outside the alphabet.
func (m Model) Count(from, to Element) int {
	row, ok := m.alpha.indexOf(from)
	if !ok {
		return 0
	}
	col, ok := m.alpha.indexOf(to)
	if !ok {
		return 0
	}
	return m.mat.at(row, col)
}

// Alphabet returns the model's elements in canonical order, sentinels
// included. The slice is a copy.
func (m Model) Alphabet() []Element {
	if m.alpha == nil {
		return nil
	}
	out := make([]Element, m.alpha.len())
	copy(out, m.alpha.elements)
	return out
}

// Merge returns a model whose counts are the cell-wise sum of m and other.
// Both models must share the same alphabet in the same order, otherwise
// ErrAlphabetMismatch is returned. Because training is additive, merging
// models trained on disjoint corpora is equivalent to training one model
// on the combined corpus.
func (m Model) Merge(other Model) (Model, error) {
	if m.alpha == nil || other.alpha == nil || !m.alpha.equal(other.alpha) {
		return Model{}, fmt.Errorf("%w: %d vs %d elements", ErrAlphabetMismatch, m.alpha.len(), other.alpha.len())
	}
	merged := Model{alpha: m.alpha, mat: m.mat.clone()}
	for i, c := range other.mat.cells {
		merged.mat.cells[i] += c
	}
	return merged, nil
}

// Stats holds aggregate numbers describing a trained model.
type Stats struct {
	AlphabetSize int // Number of elements, sentinels included.
	Transitions  int // Number of distinct observed transitions (nonzero cells).
	TotalWeight  int // Sum of all transition counts; the number of trained pairs.
	Starters     int // Number of distinct elements observed immediately after Start.
}

// Stats returns a snapshot of aggregate statistics for the model.
func (m Model) Stats() Stats {
	if m.alpha == nil {
		return Stats{}
	}
	stats := Stats{AlphabetSize: m.alpha.len()}
	for _, c := range m.mat.cells {
		if c > 0 {
			stats.Transitions++
			stats.TotalWeight += c
		}
	}
	if startRow, ok := m.alpha.indexOf(Start); ok {
		for col := 0; col < m.mat.dim; col++ {
			if m.mat.at(startRow, col) > 0 {
				stats.Starters++
			}
		}
	}
	return stats
}
