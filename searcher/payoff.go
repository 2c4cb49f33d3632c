package searcher

import (
	"sort"

	"hexrps/game"
	"hexrps/utils"
)

// Subgame is the simultaneous move of an acting token and a watched token.
// Matrix[i][j] scores (Moves[i], Replies[j]) for the acting side and
// Mirror[j][i] scores the same pair for the watched side.
type Subgame struct {
	Matrix  Matrix
	Mirror  Matrix
	Moves   []game.Hex
	Replies []game.Hex
}

func (sg Subgame) Empty() bool {
	return len(sg.Moves) == 0 || len(sg.Replies) == 0
}

// Build scores every pair of candidate destinations for acting and watched.
// Each cell relocates only those two tokens, resolves battles and evaluates
// the result from both sides. Moves and Replies are in matrix order.
func (l *Lookahead) Build(acting, watched game.Token, own, opp game.TokenSet) Subgame {
	moves := l.candidates(acting, own, watched)
	replies := l.candidates(watched, opp, acting)
	if len(moves) == 0 || len(replies) == 0 {
		return Subgame{}
	}
	l.metrics.AddMatrix()

	matrix := make(Matrix, len(moves))
	mirror := make(Matrix, len(replies))
	for j := range mirror {
		mirror[j] = make([]float64, len(moves))
	}

	for i, to := range moves {
		matrix[i] = make([]float64, len(replies))
		ownNext, _ := own.Move(acting.ID, to)
		movedActing := acting
		movedActing.Hex = to

		for j, reply := range replies {
			oppNext, _ := opp.Move(watched.ID, reply)
			movedWatched := watched
			movedWatched.Hex = reply

			ownAlive, oppAlive := game.Resolve(ownNext, oppNext)
			matrix[i][j] = l.evaluate(game.Outcome{
				Board:         l.board,
				Acting:        movedActing,
				Watched:       movedWatched,
				Own:           ownNext,
				OwnAlive:      ownAlive,
				OpponentAlive: oppAlive,
			})
			mirror[j][i] = l.evaluate(game.Outcome{
				Board:         l.board,
				Acting:        movedWatched,
				Watched:       movedActing,
				Own:           oppNext,
				OwnAlive:      oppAlive,
				OpponentAlive: ownAlive,
			})
		}
	}

	return Subgame{Matrix: matrix, Mirror: mirror, Moves: moves, Replies: replies}
}

// candidates lists the in-bounds destinations of t not held by its own side,
// plus swings when enabled. They are stably ordered by distance to other:
// nearest first when chasing it, farthest first when fleeing it, otherwise in
// adjacency order. With a branching limit only the first candidates are kept.
func (l *Lookahead) candidates(t game.Token, own game.TokenSet, other game.Token) []game.Hex {
	var dests []game.Hex
	for _, h := range l.board.Neighbors(t.Hex) {
		if !own.Occupied(h) {
			dests = append(dests, h)
		}
	}
	if l.rules != nil {
		for _, h := range l.rules.SwingTargets(l.board, t.Hex, own) {
			if !own.Occupied(h) && !utils.Contains(dests, h) {
				dests = append(dests, h)
			}
		}
	}

	distance := func(i int) float64 {
		return game.EuclideanDistance(dests[i], other.Hex)
	}
	switch other.Kind {
	case t.Kind.Prey():
		sort.SliceStable(dests, func(a, b int) bool { return distance(a) < distance(b) })
	case t.Kind.Predator():
		sort.SliceStable(dests, func(a, b int) bool { return distance(a) > distance(b) })
	}

	if l.branching > 0 && len(dests) > l.branching {
		dests = dests[:l.branching]
	}
	return dests
}
