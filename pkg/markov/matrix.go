package markov

import "fmt"

// matrix is a square table of non-negative transition counts stored
// row-major in a single slice. Row is the from-index, column the to-index.
// Its dimension always equals the alphabet length of the model that owns
// it; the two only ever change together, by full reconstruction.
type matrix struct {
	dim   int
	cells []int
}

func newMatrix(dim int) *matrix {
	return &matrix{dim: dim, cells: make([]int, dim*dim)}
}

// at returns the count in cell (row, col). Out-of-range access is a
// structural failure and panics: element lookups happen before any matrix
// access, so a bad index here means the matrix and alphabet have diverged.
func (m *matrix) at(row, col int) int {
	m.check(row, col)
	return m.cells[row*m.dim+col]
}

// set overwrites cell (row, col) with the same bounds policy as at.
func (m *matrix) set(row, col, value int) {
	m.check(row, col)
	m.cells[row*m.dim+col] = value
}

func (m *matrix) check(row, col int) {
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		panic(fmt.Sprintf("markov: matrix access (%d, %d) out of range for dimension %d", row, col, m.dim))
	}
}

// rowTotal returns the sum of all counts in a row, the denominator of that
// row's transition distribution.
func (m *matrix) rowTotal(row int) int {
	m.check(row, 0)
	total := 0
	for _, c := range m.cells[row*m.dim : (row+1)*m.dim] {
		total += c
	}
	return total
}

func (m *matrix) clone() *matrix {
	cells := make([]int, len(m.cells))
	copy(cells, m.cells)
	return &matrix{dim: m.dim, cells: cells}
}
