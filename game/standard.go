package game

import (
	"fmt"
	"hexrps/utils"
)

// StandardRules implements the movement and throwing rules of the reference
// game.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) SwingTargets(b Board, from Hex, own TokenSet) []Hex {
	seen := map[Hex]bool{from: true}
	for _, n := range Adjacent(from) {
		seen[n] = true
	}

	var targets []Hex
	for _, pivot := range b.Neighbors(from) {
		if !own.Occupied(pivot) {
			continue
		}
		for _, to := range b.Neighbors(pivot) {
			if !seen[to] {
				seen[to] = true
				targets = append(targets, to)
			}
		}
	}
	return targets
}

func (sr *StandardRules) Validate(b Board, a Action, own TokenSet, reserve Reserve) error {
	if a.Type == PassAction {
		return nil
	}
	if !b.InBounds(a.To) {
		return fmt.Errorf("%w: %s targets %s", ErrOutOfBounds, a, a.To)
	}

	switch a.Type {
	case ThrowAction:
		if reserve.Remaining(a.Kind) == 0 {
			return fmt.Errorf("%w: %s", ErrReserveEmpty, a)
		}
		if utils.Contains(ThrowZone(b, own.Side(), reserve.Thrown()), a.To) {
			return nil
		}
		return fmt.Errorf("%w: %s lands outside the throw zone", ErrIllegalAction, a)
	case SlideAction:
		if !own.Occupied(a.From) {
			return fmt.Errorf("%w: %s", ErrNoToken, a)
		}
		if !IsAdjacent(a.From, a.To) {
			return fmt.Errorf("%w: %s is not a slide to a neighbour", ErrIllegalAction, a)
		}
		return nil
	case SwingAction:
		if !own.Occupied(a.From) {
			return fmt.Errorf("%w: %s", ErrNoToken, a)
		}
		if utils.Contains(sr.SwingTargets(b, a.From, own), a.To) {
			return nil
		}
		return fmt.Errorf("%w: %s has no pivot", ErrIllegalAction, a)
	}
	return fmt.Errorf("%w: unknown action type %d", ErrIllegalAction, int(a.Type))
}
