package searcher

import (
	"fmt"

	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/utils"

	"github.com/rs/zerolog/log"
)

type Option func(l *Lookahead)

// Result is the outcome of searching one acting token against one watched
// token. To is meaningless when Value is Unreachable.
type Result struct {
	Value float64
	To    game.Hex
}

func (r Result) Reachable() bool {
	return r.Value > Unreachable
}

// Lookahead values an acting token's destinations by solving one subgame per
// ply and recursing over the watched token's replies. It holds no per-search
// state and may be shared.
type Lookahead struct {
	depth     int
	branching int
	board     game.Board
	evaluate  game.Evaluate
	rules     game.Rules // nil disables swing candidates
	memoize   bool
	metrics   metrics.Collector
}

// WithDepth sets the number of plies searched below the root.
func WithDepth(depth int) Option {
	return func(l *Lookahead) {
		if depth < 0 {
			panic("Depth must not be negative")
		}
		l.depth = depth
	}
}

// WithBranching keeps only the first n ordered candidates per token; 0 keeps all.
func WithBranching(n int) Option {
	return func(l *Lookahead) {
		if n >= 0 {
			l.branching = n
		}
	}
}

func WithBoard(board game.Board) Option {
	return func(l *Lookahead) {
		if board.Radius < 1 {
			panic("Board radius must be positive")
		}
		l.board = board
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(l *Lookahead) {
		if evaluate != nil {
			l.evaluate = evaluate
		}
	}
}

// WithSwings adds the swing destinations reported by rules to each token's
// candidates.
func WithSwings(rules game.Rules) Option {
	return func(l *Lookahead) {
		l.rules = rules
	}
}

func WithoutMemo() Option {
	return func(l *Lookahead) {
		l.memoize = false
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(l *Lookahead) {
		if collector != nil {
			l.metrics = collector
		}
	}
}

func NewLookahead(options ...Option) *Lookahead {
	l := &Lookahead{ // Default values
		depth:    2,
		board:    game.StandardBoard,
		evaluate: game.EvaluatePosition,
		memoize:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Lookahead) Depth() int {
	return l.depth
}

func (l *Lookahead) Board() game.Board {
	return l.board
}

type frameKey struct {
	acting  game.Token
	watched game.Token
	own     game.StateHash
	opp     game.StateHash
	depth   int
}

type search struct {
	*Lookahead
	memo map[frameKey]Result
}

// Search values acting's best destination against watched. own and opp are
// the two sides' current tokens and are never modified. recent lists moves
// the acting side made lately; the root avoids repeating them when the
// equilibrium offers an alternative.
func (l *Lookahead) Search(acting, watched game.Token, own, opp game.TokenSet, recent []Move) (Result, error) {
	l.metrics.AddSearch()
	s := &search{Lookahead: l}
	if l.memoize {
		s.memo = make(map[frameKey]Result)
	}
	result, err := s.value(acting, watched, own, opp, 0, recent)
	if err != nil {
		return Result{Value: Unreachable}, fmt.Errorf("searching %s against %s: %w", acting, watched, err)
	}
	return result, nil
}

func (s *search) value(acting, watched game.Token, own, opp game.TokenSet, depth int, recent []Move) (Result, error) {
	key := frameKey{acting, watched, own.Hash(), opp.Hash(), depth}
	if s.memo != nil && depth > 0 {
		if result, ok := s.memo[key]; ok {
			s.metrics.AddMemoHit()
			return result, nil
		}
	}

	subgame := s.Build(acting, watched, own, opp)
	if subgame.Empty() {
		log.Trace().Msgf("no subgame for %s against %s at depth %d", acting, watched, depth)
		return Result{Value: Unreachable}, nil
	}

	matrix, _, moves, _ := Reduce(subgame.Matrix, subgame.Mirror, subgame.Moves, subgame.Replies)
	s.metrics.AddPruned(len(subgame.Moves)-len(moves), len(subgame.Replies)-matrix.Cols())

	strategy, value, err := Solve(matrix, true, true)
	s.metrics.AddSolve()
	if err != nil {
		return Result{}, fmt.Errorf("solving %dx%d subgame at depth %d: %w", matrix.Rows(), matrix.Cols(), depth, err)
	}

	row := bestRow(strategy)
	if depth == 0 {
		row = avoidRecent(strategy, moves, acting.ID, recent, row)
	}
	result := Result{Value: value, To: moves[row]}

	if depth < s.depth {
		follow, err := s.replies(acting, watched, own, opp, moves[row], subgame.Replies, depth)
		if err != nil {
			return Result{}, err
		}
		result.Value += follow
	}

	log.Trace().Msgf("depth %d: %s -> %s valued %.2f", depth, acting, result.To, result.Value)
	if s.memo != nil && depth > 0 {
		s.memo[key] = result
	}
	return result, nil
}

// replies commits acting to its chosen destination and returns the best value
// over every reply of watched, or 0 when no reply can be searched.
func (s *search) replies(acting, watched game.Token, own, opp game.TokenSet, to game.Hex, replies []game.Hex, depth int) (float64, error) {
	ownNext, _ := own.Move(acting.ID, to)
	acting.Hex = to

	best := Unreachable
	for _, reply := range replies {
		oppNext, _ := opp.Move(watched.ID, reply)
		next := watched
		next.Hex = reply

		child, err := s.value(acting, next, ownNext, oppNext, depth+1, nil)
		if err != nil {
			return 0, err
		}
		best = max(best, child.Value)
	}
	if best == Unreachable {
		return 0, nil
	}
	return best, nil
}

// bestRow returns the most probable row, preferring the lowest index among
// rows within tieTolerance of the maximum.
func bestRow(strategy []float64) int {
	best := 0
	for i, p := range strategy {
		if p > strategy[best]+tieTolerance {
			best = i
		}
	}
	return best
}

// avoidRecent swaps a recently played choice for the most probable
// alternative with positive probability, if there is one. Alternatives that
// are also recent are skipped.
func avoidRecent(strategy []float64, moves []game.Hex, token int, recent []Move, row int) int {
	if !utils.Contains(recent, Move{Token: token, To: moves[row]}) {
		return row
	}

	alt := -1
	for i, p := range strategy {
		if i == row || p <= tieTolerance || utils.Contains(recent, Move{Token: token, To: moves[i]}) {
			continue
		}
		if alt < 0 || p > strategy[alt]+tieTolerance {
			alt = i
		}
	}
	if alt < 0 {
		return row
	}
	return alt
}
