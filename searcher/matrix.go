package searcher

import (
	"fmt"
	"strings"

	"hexrps/utils"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a payoff table indexed [row][column]. Methods never modify the
// receiver.
type Matrix [][]float64

func (m Matrix) Rows() int {
	return len(m)
}

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate reports ErrEmptyMatrix or ErrRaggedMatrix.
func (m Matrix) Validate() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return ErrEmptyMatrix
	}
	for i, row := range m {
		if len(row) != m.Cols() {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMatrix, i, len(row), m.Cols())
		}
	}
	return nil
}

func (m Matrix) Transpose() Matrix {
	t := make(Matrix, m.Cols())
	for j := range t {
		t[j] = make([]float64, m.Rows())
		for i := range m {
			t[j][i] = m[i][j]
		}
	}
	return t
}

func (m Matrix) Negate() Matrix {
	n := make(Matrix, len(m))
	for i, row := range m {
		n[i] = make([]float64, len(row))
		floats.ScaleTo(n[i], -1, row)
	}
	return n
}

func (m Matrix) WithoutRow(i int) Matrix {
	return utils.Remove(m, i)
}

func (m Matrix) WithoutCol(j int) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = utils.Remove(row, j)
	}
	return out
}

func (m Matrix) RowSum(i int) float64 {
	return floats.Sum(m[i])
}

// RowMin is the payoff the row player is guaranteed by playing row i.
func (m Matrix) RowMin(i int) float64 {
	return floats.Min(m[i])
}

// ColMax is the payoff the column player concedes at worst by playing column j.
func (m Matrix) ColMax(j int) float64 {
	best := m[0][j]
	for _, row := range m[1:] {
		if row[j] > best {
			best = row[j]
		}
	}
	return best
}

func (m Matrix) Min() float64 {
	low := m.RowMin(0)
	for i := 1; i < len(m); i++ {
		low = min(low, m.RowMin(i))
	}
	return low
}

func (m Matrix) Max() float64 {
	high := floats.Max(m[0])
	for _, row := range m[1:] {
		high = max(high, floats.Max(row))
	}
	return high
}

// Dense copies m into a gonum matrix. m must be valid.
func (m Matrix) Dense() *mat.Dense {
	data := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%7.2f", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
