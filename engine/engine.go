package engine

import (
	"hexrps/experiments/metrics"
	"hexrps/game"
)

// Draw is the winner reported when neither side wins.
const Draw = -1

type Engine interface {
	// Run plays a game till one side is eliminated or the turn limit is
	// reached. winner is the side index, or Draw.
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Agent is one side's decision maker. Update is called after every turn
// with the actions the referee actually applied.
type Agent interface {
	Action() (game.Action, metrics.SearchMetric, error)
	Update(own, opponent game.Action) error
}
