package markov

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Decode error conditions. Decode wraps these with detail about the
// offending field or token; match with errors.Is.
var (
	// ErrMissingField indicates a required field of the serialized form is
	// absent.
	ErrMissingField = errors.New("markov: missing required field")
	// ErrShapeMismatch indicates the matrix dimensions do not agree with
	// the alphabet length.
	ErrShapeMismatch = errors.New("markov: matrix shape does not match alphabet")
	// ErrNegativeCount indicates a matrix cell below zero.
	ErrNegativeCount = errors.New("markov: negative transition count")
	// ErrBadToken indicates an alphabet entry that is not "start", "end",
	// or a single character, or that appears more than once.
	ErrBadToken = errors.New("markov: invalid alphabet token")
	// ErrBadLookup indicates an alphabetLookup that disagrees with the
	// alphabet sequence.
	ErrBadLookup = errors.New("markov: alphabet lookup does not match alphabet")
)

// ExportedModel is the serializable representation of a model. Its JSON
// form is the package's persistence contract: how (and whether) the bytes
// reach disk or network is the host's business.
//
// AlphabetLookup is positionally redundant with Alphabet; it is persisted
// anyway so a decoder can rebuild the index map without recomputing it.
type ExportedModel struct {
	Matrix         [][]int        `json:"matrix"`
	Alphabet       []string       `json:"alphabet"`
	AlphabetLookup map[string]int `json:"alphabetLookup"`
}

// Encode returns the structural form of the model: the full count matrix
// in row-major order plus the alphabet as tokens, where Start is "start",
// End is "end", and a character is its one-character string.
func (m Model) Encode() ExportedModel {
	n := m.alpha.len()
	exported := ExportedModel{
		Matrix:         make([][]int, n),
		Alphabet:       make([]string, n),
		AlphabetLookup: make(map[string]int, n),
	}
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for col := 0; col < n; col++ {
			row[col] = m.mat.at(i, col)
		}
		exported.Matrix[i] = row
		token := m.alpha.at(i).String()
		exported.Alphabet[i] = token
		exported.AlphabetLookup[token] = i
	}
	return exported
}

// Decode reconstructs a model from its structural form, the exact inverse
// of Encode: decode(encode(m)) is structurally identical to m.
//
// Decode validates before building anything. Missing fields, a matrix that
// is not square with the alphabet, negative counts, unparseable or
// duplicate tokens, and a lookup that disagrees with the alphabet all fail
// with a distinct error; a partially-built model is never returned.
func Decode(exported ExportedModel) (Model, error) {
	if exported.Matrix == nil {
		return Model{}, fmt.Errorf("%w: matrix", ErrMissingField)
	}
	if exported.Alphabet == nil {
		return Model{}, fmt.Errorf("%w: alphabet", ErrMissingField)
	}
	if exported.AlphabetLookup == nil {
		return Model{}, fmt.Errorf("%w: alphabetLookup", ErrMissingField)
	}

	n := len(exported.Alphabet)
	if len(exported.Matrix) != n {
		return Model{}, fmt.Errorf("%w: %d matrix rows for %d alphabet elements", ErrShapeMismatch, len(exported.Matrix), n)
	}
	for i, row := range exported.Matrix {
		if len(row) != n {
			return Model{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, i, len(row), n)
		}
		for col, c := range row {
			if c < 0 {
				return Model{}, fmt.Errorf("%w: cell (%d, %d) = %d", ErrNegativeCount, i, col, c)
			}
		}
	}
	if len(exported.AlphabetLookup) != n {
		return Model{}, fmt.Errorf("%w: %d lookup entries for %d alphabet elements", ErrBadLookup, len(exported.AlphabetLookup), n)
	}

	elements := make([]Element, n)
	index := make(map[Element]int, n)
	for i, token := range exported.Alphabet {
		e, err := parseToken(token)
		if err != nil {
			return Model{}, err
		}
		if _, dup := index[e]; dup {
			return Model{}, fmt.Errorf("%w: %q appears more than once", ErrBadToken, token)
		}
		elements[i] = e
		index[e] = i
		if got, ok := exported.AlphabetLookup[token]; !ok || got != i {
			return Model{}, fmt.Errorf("%w: %q maps to %d, alphabet position is %d", ErrBadLookup, token, got, i)
		}
	}

	mat := newMatrix(n)
	for row, cells := range exported.Matrix {
		copy(mat.cells[row*n:(row+1)*n], cells)
	}
	return Model{alpha: &alphabet{elements: elements, index: index}, mat: mat}, nil
}

// parseToken maps a serialized token back to its element: "start" and
// "end" are the sentinels, any other single-character string is that
// character. Anything else is rejected rather than truncated; an earlier
// format kept only the first character of longer tokens, which silently
// collapsed distinct tokens into one element.
func parseToken(token string) (Element, error) {
	switch token {
	case StartToken:
		return Start, nil
	case EndToken:
		return End, nil
	}
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || size != len(token) || r == utf8.RuneError && size == 1 {
		return Element{}, fmt.Errorf("%w: %q is not \"start\", \"end\", or a single character", ErrBadToken, token)
	}
	return Char(r), nil
}

// Export writes the model's encoded form to w as indented JSON. This is
// useful for backups or for transferring models between hosts.
func (m Model) Export(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m.Encode())
}

// Import reads a JSON-encoded model from r and reconstructs it, applying
// the same validation as Decode. Malformed JSON (including non-integer
// matrix cells) fails at the decode step.
func Import(r io.Reader) (Model, error) {
	var exported ExportedModel
	if err := json.NewDecoder(r).Decode(&exported); err != nil {
		return Model{}, fmt.Errorf("markov: failed to decode json model: %w", err)
	}
	return Decode(exported)
}
