package searcher

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const simplexTolerance = 1e-10

// Solve finds an optimal mixed strategy and the value of the zero-sum game m.
// Payoffs are those of the row player. With rowPlayer false the strategy is
// over columns instead. With maximiser false the player minimises the payoffs.
// The value is expressed in m's payoffs either way.
func Solve(m Matrix, maximiser, rowPlayer bool) ([]float64, float64, error) {
	if err := m.Validate(); err != nil {
		return nil, 0, err
	}
	if !rowPlayer {
		m = m.Transpose()
	}
	if !maximiser {
		strategy, value, err := Solve(m.Negate(), true, true)
		return strategy, -value, err
	}

	if row, value, ok := saddlePoint(m); ok {
		strategy := make([]float64, m.Rows())
		strategy[row] = 1
		return strategy, value, nil
	}
	return solveLP(m)
}

// saddlePoint finds a pure equilibrium, where the best guaranteed row meets
// the column player's best guaranteed column. Ties go to the lowest row.
func saddlePoint(m Matrix) (int, float64, bool) {
	row, maximin := 0, m.RowMin(0)
	for i := 1; i < m.Rows(); i++ {
		if v := m.RowMin(i); v > maximin {
			row, maximin = i, v
		}
	}
	if m.Rows() == 1 {
		return row, maximin, true
	}

	minimax := m.ColMax(0)
	for j := 1; j < m.Cols(); j++ {
		minimax = min(minimax, m.ColMax(j))
	}
	return row, maximin, maximin == minimax
}

// solveLP shifts every payoff to at least 1 so the game value is positive,
// then solves the standard form
//
//	minimise 1ᵀx  subject to  Aᵀx - s = 1,  x, s ≥ 0
//
// whose optimum is 1/value, with strategy x·value.
func solveLP(m Matrix) ([]float64, float64, error) {
	rows, cols := m.Rows(), m.Cols()
	shift := 1 - m.Min()

	payoffs := m.Dense()
	payoffs.Apply(func(_, _ int, v float64) float64 { return v + shift }, payoffs)

	A := mat.NewDense(cols, rows+cols, nil)
	A.Slice(0, cols, 0, rows).(*mat.Dense).Copy(payoffs.T())
	for j := 0; j < cols; j++ {
		A.Set(j, rows+j, -1)
	}

	c := make([]float64, rows+cols)
	for i := 0; i < rows; i++ {
		c[i] = 1
	}
	b := make([]float64, cols)
	for j := range b {
		b[j] = 1
	}

	opt, x, err := lp.Simplex(c, A, b, simplexTolerance, initialBasis(m))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNoEquilibrium, err)
	}
	if opt <= 0 {
		return nil, 0, fmt.Errorf("%w: non-positive optimum %g", ErrNoEquilibrium, opt)
	}

	value := 1 / opt
	strategy := normalise(x[:rows])
	return strategy, value - shift, nil
}

// initialBasis is a feasible starting vertex: play row 0 alone, scaled so
// its weakest column pays exactly 1. The basis is that row plus the slack of
// every other column.
func initialBasis(m Matrix) []int {
	binding := floats.MinIdx(m[0])
	basis := []int{0}
	for j := 0; j < m.Cols(); j++ {
		if j != binding {
			basis = append(basis, m.Rows()+j)
		}
	}
	return basis
}

// normalise clamps rounding noise below zero and rescales p to sum to one.
func normalise(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = max(v, 0)
	}
	if sum := floats.Sum(out); sum > 0 {
		floats.Scale(1/sum, out)
	}
	return out
}
