package searcher

import (
	"testing"

	"hexrps/experiments/metrics"
	"hexrps/game"

	"github.com/stretchr/testify/require"
)

// duel places one upper token and one lower token on an otherwise empty board.
func duel(own game.Kind, ownAt game.Hex, opp game.Kind, oppAt game.Hex) (game.TokenSet, game.TokenSet) {
	return game.NewTokenSet(game.Upper, game.Token{Kind: own, Hex: ownAt}),
		game.NewTokenSet(game.Lower, game.Token{Kind: opp, Hex: oppAt})
}

func TestBuild(t *testing.T) {
	t.Run("simple capture", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: 0, Q: -1})
		l := NewLookahead()

		sg := l.Build(own.At(0), opp.At(0), own, opp)

		require.Contains(t, sg.Moves, game.Hex{R: 0, Q: -1}, "Rock may step onto the scissors' tile")
		require.ElementsMatch(t, game.StandardBoard.Neighbors(game.Hex{R: 0, Q: -1}), sg.Replies,
			"Scissors may go to any neighbour of its tile")
		require.Equal(t, len(sg.Moves), sg.Matrix.Rows())
		require.Equal(t, len(sg.Replies), sg.Matrix.Cols())
		require.Equal(t, sg.Matrix.Transpose().Rows(), sg.Mirror.Rows(), "Mirror is indexed [reply][move]")

		captures := 0
		for i, to := range sg.Moves {
			for j, reply := range sg.Replies {
				if to != reply {
					continue
				}
				captures++
				ownNext, _ := own.Move(0, to)
				oppNext, _ := opp.Move(0, reply)
				_, oppAlive := game.Resolve(ownNext, oppNext)
				require.Equal(t, 0, oppAlive.Len(), "Scissors should be captured on %s", to)

				for ci := range sg.Moves {
					for cj := range sg.Replies {
						if sg.Moves[ci] != sg.Replies[cj] {
							require.Greater(t, sg.Matrix[i][j], sg.Matrix[ci][cj],
								"Capturing on %s should beat (%s, %s)", to, sg.Moves[ci], sg.Replies[cj])
						}
					}
				}
				require.InDelta(t, -50, sg.Mirror[j][i], 1e-9, "The captured scissors scores its death")
			}
		}
		require.Equal(t, 2, captures, "Rock and scissors share two reachable tiles")
	})

	t.Run("ordering moves towards prey and replies away", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: 0, Q: -1})

		sg := NewLookahead().Build(own.At(0), opp.At(0), own, opp)

		require.Equal(t, []game.Hex{{R: 0, Q: -1}, {R: 1, Q: -1}, {R: -1, Q: 0}, {R: 1, Q: 0}, {R: 0, Q: 1}, {R: -1, Q: 1}}, sg.Moves,
			"Nearest first, adjacency order on ties")
		require.Equal(t, game.Hex{R: 1, Q: -2}, sg.Replies[0], "Scissors' first reply is its farthest escape")
	})

	t.Run("limiting the branching factor", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: 0, Q: -1})

		sg := NewLookahead(WithBranching(2)).Build(own.At(0), opp.At(0), own, opp)

		require.Equal(t, []game.Hex{{R: 0, Q: -1}, {R: 1, Q: -1}}, sg.Moves)
		require.Len(t, sg.Replies, 2)
	})

	t.Run("adding swing destinations", func(t *testing.T) {
		own := game.NewTokenSet(game.Upper,
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: 0}},
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: 1}})
		opp := game.NewTokenSet(game.Lower, game.Token{Kind: game.Paper, Hex: game.Hex{R: -3, Q: 0}})

		plain := NewLookahead().Build(own.At(0), opp.At(0), own, opp)
		swings := NewLookahead(WithSwings(game.NewStandardRules())).Build(own.At(0), opp.At(0), own, opp)

		require.Len(t, plain.Moves, 5, "The pivot's own tile is not a destination")
		require.Len(t, swings.Moves, 8, "Three tiles lie behind the friendly pivot")
		require.Contains(t, swings.Moves, game.Hex{R: 0, Q: 2})
		require.NotContains(t, swings.Moves, game.Hex{R: 0, Q: 1})
	})

	t.Run("skipping tiles held by the moving side", func(t *testing.T) {
		own := game.NewTokenSet(game.Upper,
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: 0}},
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: -1}})
		opp := game.NewTokenSet(game.Lower,
			game.Token{Kind: game.Scissors, Hex: game.Hex{R: 0, Q: -3}},
			game.Token{Kind: game.Paper, Hex: game.Hex{R: 1, Q: -3}})

		sg := NewLookahead().Build(own.At(0), opp.At(0), own, opp)

		require.Len(t, sg.Moves, 5)
		require.NotContains(t, sg.Moves, game.Hex{R: 0, Q: -1}, "Rock must not join the other rock")
		require.Len(t, sg.Replies, 5)
		require.NotContains(t, sg.Replies, game.Hex{R: 1, Q: -3}, "Scissors must not join its own paper")
	})

	t.Run("empty when a token has nowhere to go", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 9, Q: 9}, game.Scissors, game.Hex{R: 0, Q: 0})

		require.True(t, NewLookahead().Build(own.At(0), opp.At(0), own, opp).Empty())
	})
}

func TestSearch(t *testing.T) {
	t.Run("avoiding a predator", func(t *testing.T) {
		own, opp := duel(game.Paper, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: 0, Q: -1})

		result, err := NewLookahead(WithDepth(0)).Search(own.At(0), opp.At(0), own, opp, nil)

		require.NoError(t, err)
		require.InDelta(t, -10, result.Value, 1e-9, "Paper can always stay out of reach")
		require.NotEqual(t, 1, game.HexDistance(result.To, game.Hex{R: 0, Q: -1}),
			"Paper should not stop on a tile the scissors can reach, chose %s", result.To)
	})

	t.Run("never choosing a tile held by the acting side", func(t *testing.T) {
		own := game.NewTokenSet(game.Upper,
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: 0}},
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: -1}})
		opp := game.NewTokenSet(game.Lower, game.Token{Kind: game.Scissors, Hex: game.Hex{R: 0, Q: -3}})

		for depth := 0; depth <= 2; depth++ {
			result, err := NewLookahead(WithDepth(depth)).Search(own.At(0), opp.At(0), own, opp, nil)

			require.NoError(t, err)
			require.True(t, result.Reachable())
			require.False(t, own.Occupied(result.To), "Depth %d chose the friendly tile %s", depth, result.To)
		}
	})

	t.Run("sentinel value for degenerate branches", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 9, Q: 9}, game.Scissors, game.Hex{R: 0, Q: 0})

		result, err := NewLookahead().Search(own.At(0), opp.At(0), own, opp, nil)

		require.NoError(t, err, "Degenerate branches are not errors")
		require.False(t, result.Reachable())
		require.Equal(t, Unreachable, result.Value)
	})

	t.Run("never modifying the caller's tokens", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: 0, Q: -2})
		own = own.Place(game.Paper, game.Hex{R: 2, Q: 0})
		beforeOwn, beforeOpp := own.Tokens(), opp.Tokens()

		_, err := NewLookahead().Search(own.At(0), opp.At(0), own, opp, nil)

		require.NoError(t, err)
		require.Equal(t, beforeOwn, own.Tokens())
		require.Equal(t, beforeOpp, opp.Tokens())
	})

	t.Run("counting one matrix per frame", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: 0, Q: -2})
		collector := metrics.NewCollector()
		collector.Start(1, 1)

		result, err := NewLookahead(WithDepth(1), WithMetrics(collector)).Search(own.At(0), opp.At(0), own, opp, nil)
		metric := collector.Complete()

		require.NoError(t, err)
		require.True(t, result.Reachable())
		require.Equal(t, 1, metric.Searches)
		require.Equal(t, 7, metric.Matrices, "The root and one frame per scissors reply")
		require.Equal(t, 7, metric.Solves)
	})

	t.Run("memoisation does not change the result", func(t *testing.T) {
		own := game.NewTokenSet(game.Upper,
			game.Token{Kind: game.Rock, Hex: game.Hex{R: 0, Q: 0}},
			game.Token{Kind: game.Scissors, Hex: game.Hex{R: 1, Q: 0}})
		opp := game.NewTokenSet(game.Lower,
			game.Token{Kind: game.Scissors, Hex: game.Hex{R: -1, Q: -1}},
			game.Token{Kind: game.Paper, Hex: game.Hex{R: 2, Q: -2}})

		memo, err := NewLookahead(WithDepth(2)).Search(own.At(0), opp.At(0), own, opp, nil)
		require.NoError(t, err)
		plain, err := NewLookahead(WithDepth(2), WithoutMemo()).Search(own.At(0), opp.At(0), own, opp, nil)
		require.NoError(t, err)

		require.Equal(t, plain, memo)
	})

	t.Run("deeper searches accumulate reply values", func(t *testing.T) {
		own, opp := duel(game.Rock, game.Hex{R: 0, Q: 0}, game.Scissors, game.Hex{R: -2, Q: 0})

		shallow, err := NewLookahead(WithDepth(0)).Search(own.At(0), opp.At(0), own, opp, nil)
		require.NoError(t, err)
		deep, err := NewLookahead(WithDepth(1)).Search(own.At(0), opp.At(0), own, opp, nil)
		require.NoError(t, err)

		require.Equal(t, shallow.To, deep.To, "The root choice does not depend on depth")
		require.Greater(t, deep.Value, shallow.Value, "A positive reply value is added at depth 1")
	})
}

func TestRowSelection(t *testing.T) {
	moves := hexes(3)

	t.Run("lowest row wins ties", func(t *testing.T) {
		require.Equal(t, 1, bestRow([]float64{0.2, 0.4, 0.4}))
		require.Equal(t, 0, bestRow([]float64{0.5, 0.5 + 1e-12, 0}))
	})

	t.Run("skipping a recent move for a positive alternative", func(t *testing.T) {
		recent := []Move{{Token: 4, To: moves[1]}}

		require.Equal(t, 2, avoidRecent([]float64{0.2, 0.5, 0.3}, moves, 4, recent, 1))
		require.Equal(t, 1, avoidRecent([]float64{0, 1, 0}, moves, 4, recent, 1), "No alternative has positive probability")
		require.Equal(t, 1, avoidRecent([]float64{0.2, 0.5, 0.3}, moves, 5, recent, 1), "History is per token")
	})
}

func TestHistory(t *testing.T) {
	h := NewHistory(2)
	a, b, c := Move{0, game.Hex{}}, Move{1, game.Hex{}}, Move{0, game.Hex{R: 1}}

	h.Push(a)
	h.Push(b)
	h.Push(c)

	require.Equal(t, []Move{b, c}, h.Moves(), "Oldest move should be evicted")
	require.False(t, h.Contains(a))
	require.True(t, h.Contains(c))

	none := NewHistory(0)
	none.Push(a)
	require.Equal(t, 0, none.Len())
}
