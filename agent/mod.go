// Package agent turns searcher results into one action per turn and keeps a
// player's authoritative view of the game between turns.
package agent

import "errors"

// ErrNoAction is returned when a side has no tokens on the board and nothing
// left to throw.
var ErrNoAction = errors.New("no action available")
