package searcher

import (
	"fmt"

	"hexrps/game"
	"hexrps/utils"
)

// Move is a relocation of one token, identified by its ID within its side.
type Move struct {
	Token int
	To    game.Hex
}

func (m Move) String() string {
	return fmt.Sprintf("#%d->%s", m.Token, m.To)
}

// History remembers the most recent moves an agent committed to, oldest
// first. The zero value has no capacity and remembers nothing.
type History struct {
	size  int
	moves []Move
}

func NewHistory(size int) *History {
	if size < 0 {
		panic("History size must not be negative")
	}
	return &History{size: size, moves: make([]Move, 0, size)}
}

// Push records m, evicting the oldest move when full.
func (h *History) Push(m Move) {
	if h.size == 0 {
		return
	}
	if len(h.moves) == h.size {
		h.moves = utils.Remove(h.moves, 0)
	}
	h.moves = append(h.moves, m)
}

func (h *History) Contains(m Move) bool {
	return utils.Contains(h.moves, m)
}

// Moves returns a copy of the remembered moves, oldest first.
func (h *History) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

func (h *History) Len() int {
	return len(h.moves)
}
