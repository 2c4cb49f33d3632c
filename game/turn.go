package game

import "fmt"

// TurnOutcome is the position after both actions of a turn and the battle.
type TurnOutcome struct {
	Own      TokenSet
	Opponent TokenSet
	Kills    int // opponent tokens lost this turn
	Deaths   int // own tokens lost this turn
}

// ApplyTurn applies both players' actions to their token sets, resolves
// battles and counts captures. Throws are not checked against a reserve; the
// referee owns that rule.
func ApplyTurn(own, opponent Action, ownTokens, oppTokens TokenSet) (TurnOutcome, error) {
	ownTokens, err := apply(own, ownTokens)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("applying own action %s: %w", own, err)
	}
	oppTokens, err = apply(opponent, oppTokens)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("applying opponent action %s: %w", opponent, err)
	}

	ownAlive, oppAlive := Resolve(ownTokens, oppTokens)
	return TurnOutcome{
		Own:      ownAlive,
		Opponent: oppAlive,
		Kills:    oppTokens.Len() - oppAlive.Len(),
		Deaths:   ownTokens.Len() - ownAlive.Len(),
	}, nil
}

func apply(a Action, tokens TokenSet) (TokenSet, error) {
	switch a.Type {
	case ThrowAction:
		return tokens.Place(a.Kind, a.To), nil
	case SlideAction, SwingAction:
		return tokens.MoveFrom(a.From, a.To)
	case PassAction:
		return tokens, nil
	}
	return tokens, fmt.Errorf("%w: unknown action type %d", ErrIllegalAction, int(a.Type))
}
