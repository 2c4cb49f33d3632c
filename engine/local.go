package engine

import (
	"fmt"
	"time"

	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/meta"

	"github.com/rs/zerolog/log"
)

type Option func(l *Local)

// Local referees a game between two in-process agents. It keeps the
// authoritative board, forfeits illegal actions as passes and tells both
// agents what was played.
type Local struct {
	agents   [2]Agent
	rules    game.Rules
	board    game.Board
	maxTurns int
	tokens   [2]game.TokenSet
	reserves [2]game.Reserve
}

func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(l *Local) {
		if rules != nil {
			l.rules = rules
		}
	}
}

func WithBoard(board game.Board) Option {
	return func(l *Local) {
		if board.Radius < 1 {
			panic("Board radius must be positive")
		}
		l.board = board
	}
}

// WithThrows sets each side's starting reserve of every kind.
func WithThrows(perKind int) Option {
	return func(l *Local) {
		if perKind >= 0 {
			l.reserves = [2]game.Reserve{game.NewReserve(perKind), game.NewReserve(perKind)}
		}
	}
}

// LocalEngine seats upper at index 0 and lower at index 1.
func LocalEngine(upper, lower Agent, options ...Option) *Local {
	l := &Local{ // Default values
		agents:   [2]Agent{upper, lower},
		rules:    game.NewStandardRules(),
		board:    game.StandardBoard,
		maxTurns: meta.MaxTurns,
		tokens:   [2]game.TokenSet{game.NewTokenSet(game.Upper), game.NewTokenSet(game.Lower)},
		reserves: [2]game.Reserve{game.NewReserve(meta.ThrowsPerKind), game.NewReserve(meta.ThrowsPerKind)},
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now(), Winner: Draw}
	var moveMetrics []metrics.MoveMetric

	for turn := 0; turn < l.maxTurns; turn++ {
		if winner, over := l.winner(); over {
			gameMetric.Winner = winner
			break
		}

		var actions [2]game.Action
		for side, agent := range l.agents {
			action, searchMetric := l.request(side, agent)
			actions[side] = action
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Turn:         turn,
				Player:       side,
				Action:       action.String(),
				SearchMetric: searchMetric,
			})
		}

		if err := l.apply(actions, &gameMetric); err != nil {
			return Draw, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		for side, agent := range l.agents {
			if err := agent.Update(actions[side], actions[1-side]); err != nil {
				return Draw, gameMetric, moveMetrics, fmt.Errorf("turn %d: updating %s: %w", turn, game.Side(side), err)
			}
		}
		gameMetric.Turns = turn + 1
	}
	if gameMetric.Turns == l.maxTurns {
		if winner, over := l.winner(); over {
			gameMetric.Winner = winner
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	log.Info().Msgf("game over after %d turns, winner %d, kills %v", gameMetric.Turns, gameMetric.Winner, gameMetric.Kills)
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

// request asks agent for an action, replacing errors and illegal actions
// with a pass.
func (l *Local) request(side int, agent Agent) (game.Action, metrics.SearchMetric) {
	action, searchMetric, err := agent.Action()
	if err != nil {
		log.Warn().Msgf("%s forfeits the turn: %v", game.Side(side), err)
		return game.Pass(), searchMetric
	}
	if err := l.rules.Validate(l.board, action, l.tokens[side], l.reserves[side]); err != nil {
		log.Warn().Msgf("%s forfeits the turn: %v", game.Side(side), err)
		return game.Pass(), searchMetric
	}
	return action, searchMetric
}

func (l *Local) apply(actions [2]game.Action, gameMetric *metrics.GameMetric) error {
	for side, action := range actions {
		if action.Type != game.ThrowAction {
			continue
		}
		reserve, err := l.reserves[side].Take(action.Kind)
		if err != nil {
			return err
		}
		l.reserves[side] = reserve
	}

	outcome, err := game.ApplyTurn(actions[0], actions[1], l.tokens[0], l.tokens[1])
	if err != nil {
		return err
	}
	l.tokens = [2]game.TokenSet{outcome.Own, outcome.Opponent}
	gameMetric.Kills[0] += outcome.Kills
	gameMetric.Kills[1] += outcome.Deaths
	return nil
}

// winner reports whether a side is out of tokens and throws.
func (l *Local) winner() (int, bool) {
	var out [2]bool
	for side := range out {
		out[side] = l.tokens[side].Len() == 0 && l.reserves[side].Total() == 0
	}
	switch {
	case out[0] && out[1]:
		return Draw, true
	case out[0]:
		return 1, true
	case out[1]:
		return 0, true
	}
	return Draw, false
}
