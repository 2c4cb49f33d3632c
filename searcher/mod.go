// Package searcher picks a token's move by treating each ply as a
// simultaneous-move zero-sum subgame: it builds payoff matrices, prunes
// strictly dominated strategies, solves the reduced matrix by linear
// programming and recurses over the watched token's replies.
package searcher

import (
	"errors"
	"math"
)

// Unreachable is the value of a branch that could not be searched, such as a
// token with no destinations. Any real value compares greater.
var Unreachable = math.Inf(-1)

var (
	ErrEmptyMatrix   = errors.New("payoff matrix has no rows or columns")
	ErrRaggedMatrix  = errors.New("payoff matrix rows differ in length")
	ErrNoEquilibrium = errors.New("no equilibrium found for payoff matrix")
)

// probabilities closer than this are treated as equal when picking a row
const tieTolerance = 1e-9
