package searcher

import (
	"sort"

	"hexrps/game"
	"hexrps/utils"
)

// Reduce iteratively removes strictly dominated strategies from both players.
// matrix holds the acting player's payoffs indexed [move][reply] and mirror
// the watched player's payoffs indexed [reply][move]. Each pass removes at
// most one dominated move and one dominated reply, keeping both matrices and
// both move lists aligned, until a pass removes nothing.
func Reduce(matrix, mirror Matrix, moves, replies []game.Hex) (Matrix, Matrix, []game.Hex, []game.Hex) {
	for {
		removed := false

		if i := dominatedRow(matrix); i >= 0 {
			matrix, mirror = matrix.WithoutRow(i), mirror.WithoutCol(i)
			moves = utils.Remove(moves, i)
			removed = true
		}
		if j := dominatedRow(mirror); j >= 0 {
			mirror, matrix = mirror.WithoutRow(j), matrix.WithoutCol(j)
			replies = utils.Remove(replies, j)
			removed = true
		}

		if !removed {
			return matrix, mirror, moves, replies
		}
	}
}

// dominatedRow returns the first row strictly dominated by another, or -1.
// Rows with larger sums are tried first as dominators.
func dominatedRow(m Matrix) int {
	if m.Rows() < 2 || m.Cols() == 0 {
		return -1
	}

	dominators := make([]int, m.Rows())
	for i := range dominators {
		dominators[i] = i
	}
	sort.SliceStable(dominators, func(a, b int) bool {
		return m.RowSum(dominators[a]) > m.RowSum(dominators[b])
	})

	for i := range m {
		for _, d := range dominators {
			if d != i && dominates(m[d], m[i]) {
				return i
			}
		}
	}
	return -1
}

func dominates(a, b []float64) bool {
	for j := range a {
		if a[j] <= b[j] {
			return false
		}
	}
	return true
}
