package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

type StateHash uint64

// Token is a piece on the board. ID is stable for the token's lifetime and
// unique within its owner's TokenSet, so a relocated token keeps its identity.
type Token struct {
	ID    int
	Kind  Kind
	Owner Side
	Hex   Hex
}

func (t Token) String() string {
	k := t.Kind.String()
	if t.Owner == Upper {
		k = strings.ToUpper(k)
	}
	return fmt.Sprintf("%s#%d@%s", k, t.ID, t.Hex)
}

// TokenSet holds the live tokens of one side. It is a value: every operation
// that changes the set returns a new one and leaves the receiver untouched,
// so search code can branch freely on hypothetical moves.
type TokenSet struct {
	side   Side
	tokens []Token
	nextID int
}

// NewTokenSet builds a set for side from the given tokens. IDs are assigned
// in argument order and Owner is overwritten with side.
func NewTokenSet(side Side, tokens ...Token) TokenSet {
	s := TokenSet{side: side, tokens: make([]Token, 0, len(tokens))}
	for _, t := range tokens {
		s = s.Place(t.Kind, t.Hex)
	}
	return s
}

func (s TokenSet) Side() Side {
	return s.side
}

func (s TokenSet) Len() int {
	return len(s.tokens)
}

// At returns the i-th token in insertion order.
func (s TokenSet) At(i int) Token {
	return s.tokens[i]
}

// Tokens returns a copy of the tokens in insertion order.
func (s TokenSet) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Place adds a new token of kind at h.
func (s TokenSet) Place(kind Kind, h Hex) TokenSet {
	tokens := make([]Token, len(s.tokens), len(s.tokens)+1)
	copy(tokens, s.tokens)
	tokens = append(tokens, Token{ID: s.nextID, Kind: kind, Owner: s.side, Hex: h})
	return TokenSet{side: s.side, tokens: tokens, nextID: s.nextID + 1}
}

// Move relocates the token with the given ID. The second result is false,
// and the receiver is returned unchanged, when no such token exists.
func (s TokenSet) Move(id int, to Hex) (TokenSet, bool) {
	i := s.index(func(t Token) bool { return t.ID == id })
	if i < 0 {
		return s, false
	}
	return s.moveIndex(i, to), true
}

// MoveFrom relocates the first token standing on from.
func (s TokenSet) MoveFrom(from, to Hex) (TokenSet, error) {
	i := s.index(func(t Token) bool { return t.Hex == from })
	if i < 0 {
		return s, fmt.Errorf("%w: no %s token at %s", ErrNoToken, s.side, from)
	}
	return s.moveIndex(i, to), nil
}

func (s TokenSet) moveIndex(i int, to Hex) TokenSet {
	tokens := s.Tokens()
	tokens[i].Hex = to
	return TokenSet{side: s.side, tokens: tokens, nextID: s.nextID}
}

// Token looks up a token by ID.
func (s TokenSet) Token(id int) (Token, bool) {
	if i := s.index(func(t Token) bool { return t.ID == id }); i >= 0 {
		return s.tokens[i], true
	}
	return Token{}, false
}

// TokenAt returns the first token standing on h.
func (s TokenSet) TokenAt(h Hex) (Token, bool) {
	if i := s.index(func(t Token) bool { return t.Hex == h }); i >= 0 {
		return s.tokens[i], true
	}
	return Token{}, false
}

// Occupied reports whether any token stands on h.
func (s TokenSet) Occupied(h Hex) bool {
	_, ok := s.TokenAt(h)
	return ok
}

// OfKind returns the tokens of the given kind in insertion order.
func (s TokenSet) OfKind(kind Kind) []Token {
	var out []Token
	for _, t := range s.tokens {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Filter returns the tokens for which keep is true. IDs stay reserved.
func (s TokenSet) Filter(keep func(Token) bool) TokenSet {
	tokens := make([]Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if keep(t) {
			tokens = append(tokens, t)
		}
	}
	return TokenSet{side: s.side, tokens: tokens, nextID: s.nextID}
}

// Hash identifies the set's positions. Sets holding the same tokens in the
// same order hash equally.
func (s TokenSet) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.side))
	for _, t := range s.tokens {
		binary.Write(hasher, binary.LittleEndian, [4]int64{int64(t.ID), int64(t.Kind), int64(t.Hex.R), int64(t.Hex.Q)})
	}
	return StateHash(hasher.Sum64())
}

func (s TokenSet) String() string {
	return fmt.Sprintf("%s%v", s.side, s.tokens)
}

func (s TokenSet) index(match func(Token) bool) int {
	for i, t := range s.tokens {
		if match(t) {
			return i
		}
	}
	return -1
}
