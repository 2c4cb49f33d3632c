// Package game models the hex rock/paper/scissors board: coordinates, tokens,
// battles, actions and the position heuristic used by the searcher.
package game

import "errors"

var (
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrNoToken       = errors.New("no token at coordinate")
	ErrReserveEmpty  = errors.New("no tokens of that kind left to throw")
	ErrIllegalAction = errors.New("illegal action")
)
