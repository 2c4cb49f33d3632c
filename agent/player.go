package agent

import (
	"fmt"

	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/searcher"
)

// Stats counts captures made and suffered over a game.
type Stats struct {
	Kills  int
	Deaths int
}

// Player owns one side's view of the game: both token sets, its reserve,
// the turn counter and the history of recent moves.
type Player struct {
	own      game.TokenSet
	opponent game.TokenSet
	reserve  game.Reserve
	turn     int
	history  *searcher.History
	selector *Selector
	stats    Stats
}

// NewPlayer starts side with an empty board and perKind tokens of each kind
// in reserve.
func NewPlayer(side game.Side, perKind int, options ...Option) *Player {
	selector := NewSelector(options...)
	return &Player{
		own:      game.NewTokenSet(side),
		opponent: game.NewTokenSet(side.Opponent()),
		reserve:  game.NewReserve(perKind),
		history:  searcher.NewHistory(selector.history),
		selector: selector,
	}
}

// Action chooses this turn's action and reports the search work behind it.
func (p *Player) Action() (game.Action, metrics.SearchMetric, error) {
	p.selector.metrics.Start(p.selector.lookahead.Depth(), p.selector.targets)
	action, err := p.selector.ChooseAction(State{
		Own:      p.own,
		Opponent: p.opponent,
		Reserve:  p.reserve,
		Turn:     p.turn,
		History:  p.history.Moves(),
	})
	metric := p.selector.metrics.Complete()
	if err != nil {
		return game.Action{}, metric, err
	}

	if action.Type == game.SlideAction || action.Type == game.SwingAction {
		if t, ok := p.own.TokenAt(action.From); ok {
			p.history.Push(searcher.Move{Token: t.ID, To: action.To})
		}
	}
	return action, metric, nil
}

// Update applies both actions of the finished turn.
func (p *Player) Update(own, opponent game.Action) error {
	reserve := p.reserve
	if own.Type == game.ThrowAction {
		var err error
		if reserve, err = reserve.Take(own.Kind); err != nil {
			return fmt.Errorf("updating %s: %w", p.own.Side(), err)
		}
	}

	outcome, err := game.ApplyTurn(own, opponent, p.own, p.opponent)
	if err != nil {
		return fmt.Errorf("updating %s: %w", p.own.Side(), err)
	}

	p.own, p.opponent, p.reserve = outcome.Own, outcome.Opponent, reserve
	p.stats.Kills += outcome.Kills
	p.stats.Deaths += outcome.Deaths
	p.turn++
	return nil
}

func (p *Player) Side() game.Side {
	return p.own.Side()
}

func (p *Player) Tokens() (own, opponent game.TokenSet) {
	return p.own, p.opponent
}

func (p *Player) Reserve() game.Reserve {
	return p.reserve
}

func (p *Player) Stats() Stats {
	return p.stats
}
