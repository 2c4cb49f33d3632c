package agent

import (
	"fmt"

	"hexrps/game"
	"hexrps/utils"
)

// throw places a token from the reserve. A prey of an available kind inside
// the throw zone is captured directly; otherwise the kind that beats a random
// opponent token is preferred, landing on a random tile of the zone.
func (s *Selector) throw(st State) (game.Action, error) {
	kinds := st.Reserve.Available()
	if len(kinds) == 0 {
		return game.Action{}, fmt.Errorf("%w: %s has nothing to throw", ErrNoAction, st.Own.Side())
	}
	zone := game.ThrowZone(s.lookahead.Board(), st.Own.Side(), st.Reserve.Thrown())

	for _, opponent := range st.Opponent.Tokens() {
		killer := opponent.Kind.Predator()
		if utils.Contains(kinds, killer) && utils.Contains(zone, opponent.Hex) && !st.Own.Occupied(opponent.Hex) {
			return game.Throw(killer, opponent.Hex), nil
		}
	}

	kind := kinds[s.rng.Intn(len(kinds))]
	if st.Opponent.Len() > 0 {
		opponent := st.Opponent.At(s.rng.Intn(st.Opponent.Len()))
		if killer := opponent.Kind.Predator(); utils.Contains(kinds, killer) {
			kind = killer
		}
	}

	tiles := freeTiles(zone, st.Own)
	return game.Throw(kind, tiles[s.rng.Intn(len(tiles))]), nil
}

// freeTiles drops zone tiles already holding an own token, unless that
// leaves nothing.
func freeTiles(zone []game.Hex, own game.TokenSet) []game.Hex {
	var safe []game.Hex
	for _, h := range zone {
		if !own.Occupied(h) {
			safe = append(safe, h)
		}
	}
	if len(safe) == 0 {
		return zone
	}
	return safe
}
