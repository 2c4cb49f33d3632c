package agent

import (
	"fmt"
	"sort"
	"time"

	"hexrps/experiments/metrics"
	"hexrps/game"
	"hexrps/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Selector)

// State is everything the selector needs to know about a turn.
type State struct {
	Own      game.TokenSet
	Opponent game.TokenSet
	Reserve  game.Reserve
	Turn     int
	History  []searcher.Move
}

// Selector chooses one action per turn by searching each engaged token
// against its nearest targets and threats.
type Selector struct {
	lookahead     *searcher.Lookahead
	targets       int
	threats       int
	history       int
	throwInterval int
	rng           *rand.Rand
	metrics       metrics.Collector
}

// WithTargets limits how many of the nearest prey each token is searched against.
func WithTargets(n int) Option {
	return func(s *Selector) {
		if n >= 0 {
			s.targets = n
		}
	}
}

// WithThreats limits how many of the nearest predators each token is searched against.
func WithThreats(n int) Option {
	return func(s *Selector) {
		if n >= 0 {
			s.threats = n
		}
	}
}

// WithHistory sets how many recent moves a Player avoids repeating.
func WithHistory(n int) Option {
	return func(s *Selector) {
		if n >= 0 {
			s.history = n
		}
	}
}

// WithThrowInterval forces a throw every n-th turn while the reserve lasts.
func WithThrowInterval(n int) Option {
	return func(s *Selector) {
		if n >= 0 {
			s.throwInterval = n
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Selector) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLookahead(l *searcher.Lookahead) Option {
	return func(s *Selector) {
		if l != nil {
			s.lookahead = l
		}
	}
}

// WithMetrics records per-decision metrics. A lookahead passed with
// WithLookahead should report to the same collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(s *Selector) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func NewSelector(options ...Option) *Selector {
	s := &Selector{ // Default values
		targets: 2,
		threats: 2,
		history: 5,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if s.lookahead == nil {
		s.lookahead = searcher.NewLookahead(searcher.WithMetrics(s.metrics))
	}
	return s
}

// ChooseAction picks the action with the highest searched value over every
// token that has prey or predators on the board. Without any, it throws if
// it can and otherwise slides a random token.
func (s *Selector) ChooseAction(st State) (game.Action, error) {
	canThrow := st.Reserve.Total() > 0
	if canThrow && (st.Own.Len() == 0 || s.throwDue(st.Turn)) {
		return s.throw(st)
	}
	if st.Own.Len() == 0 {
		return game.Action{}, ErrNoAction
	}

	engaged := false
	best := struct {
		token  game.Token
		result searcher.Result
	}{result: searcher.Result{Value: searcher.Unreachable}}

	for _, token := range st.Own.Tokens() {
		watched := s.watchList(token, st.Opponent)
		if len(watched) == 0 {
			continue
		}
		if !engaged {
			best.token = token
			engaged = true
		}

		for _, opponent := range watched {
			result, err := s.lookahead.Search(token, opponent, st.Own, st.Opponent, st.History)
			if err != nil {
				return game.Action{}, fmt.Errorf("choosing action for %s: %w", token, err)
			}
			if result.Value > best.result.Value {
				best.token, best.result = token, result
			}
		}
	}

	if !engaged {
		if canThrow {
			log.Info().Msgf("%s has nothing to chase or flee, throwing", st.Own.Side())
			return s.throw(st)
		}
		return s.explore(st.Own.Tokens(), st.Own)
	}
	if !best.result.Reachable() {
		log.Info().Msgf("no reachable search result for %s, exploring", best.token)
		if action, err := s.explore([]game.Token{best.token}, st.Own); err == nil {
			return action, nil
		}
		return s.explore(st.Own.Tokens(), st.Own)
	}

	action := game.Relocation(best.token.Hex, best.result.To)
	log.Debug().Msgf("%s chose %s valued %.2f", st.Own.Side(), action, best.result.Value)
	return action, nil
}

func (s *Selector) throwDue(turn int) bool {
	return s.throwInterval > 0 && turn%s.throwInterval == 0
}

// watchList returns the nearest prey of token followed by its nearest
// predators, within the configured limits.
func (s *Selector) watchList(token game.Token, opponents game.TokenSet) []game.Token {
	targets := nearest(token.Hex, opponents.OfKind(token.Kind.Prey()), s.targets)
	threats := nearest(token.Hex, opponents.OfKind(token.Kind.Predator()), s.threats)
	return append(targets, threats...)
}

// nearest sorts candidates by hex distance from h, breaking ties by
// Euclidean distance, and keeps at most n.
func nearest(h game.Hex, candidates []game.Token, n int) []game.Token {
	sort.SliceStable(candidates, func(a, b int) bool {
		da, db := game.HexDistance(h, candidates[a].Hex), game.HexDistance(h, candidates[b].Hex)
		if da != db {
			return da < db
		}
		return game.EuclideanDistance(h, candidates[a].Hex) < game.EuclideanDistance(h, candidates[b].Hex)
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// explore slides a random token from tokens to a random neighbouring tile
// not held by own.
func (s *Selector) explore(tokens []game.Token, own game.TokenSet) (game.Action, error) {
	s.rng.Shuffle(len(tokens), func(i, j int) { tokens[i], tokens[j] = tokens[j], tokens[i] })
	board := s.lookahead.Board()
	for _, token := range tokens {
		var dests []game.Hex
		for _, h := range board.Neighbors(token.Hex) {
			if !own.Occupied(h) {
				dests = append(dests, h)
			}
		}
		if len(dests) > 0 {
			return game.Slide(token.Hex, dests[s.rng.Intn(len(dests))]), nil
		}
	}
	return game.Action{}, ErrNoAction
}
