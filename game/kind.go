package game

import "fmt"

// Kind is the type of a token. Kinds beat each other cyclically.
type Kind int

const (
	Rock Kind = iota
	Paper
	Scissors
)

// Kinds lists every kind in declaration order.
var Kinds = [3]Kind{Rock, Paper, Scissors}

// Prey is the kind that k beats.
func (k Kind) Prey() Kind {
	switch k {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	}
	panic(fmt.Sprintf("unknown kind %d", int(k)))
}

// Predator is the kind that beats k.
func (k Kind) Predator() Kind {
	return k.Prey().Prey()
}

// Beats reports whether k defeats other when they share a tile.
func (k Kind) Beats(other Kind) bool {
	return k.Prey() == other
}

func (k Kind) String() string {
	switch k {
	case Rock:
		return "r"
	case Paper:
		return "p"
	case Scissors:
		return "s"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Side identifies a player.
type Side int

const (
	Upper Side = iota
	Lower
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Upper {
		return Lower
	}
	return Upper
}

func (s Side) String() string {
	if s == Upper {
		return "upper"
	}
	return "lower"
}
