package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	ThrowAction ActionType = iota // place a token from reserve
	SlideAction                   // move a token to an adjacent tile
	SwingAction                   // hop over an adjacent friendly token
	PassAction                    // forfeited turn
)

func (t ActionType) String() string {
	switch t {
	case ThrowAction:
		return "THROW"
	case SlideAction:
		return "SLIDE"
	case SwingAction:
		return "SWING"
	case PassAction:
		return "PASS"
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// Action is one player's decision for a turn. Kind is only meaningful for
// throws and From only for slides and swings.
type Action struct {
	Type ActionType
	Kind Kind
	From Hex
	To   Hex
}

func Throw(kind Kind, to Hex) Action {
	return Action{Type: ThrowAction, Kind: kind, To: to}
}

func Slide(from, to Hex) Action {
	return Action{Type: SlideAction, From: from, To: to}
}

func Swing(from, to Hex) Action {
	return Action{Type: SwingAction, From: from, To: to}
}

func Pass() Action {
	return Action{Type: PassAction}
}

// Relocation returns a slide for adjacent destinations and a swing otherwise.
func Relocation(from, to Hex) Action {
	if HexDistance(from, to) > 1 {
		return Swing(from, to)
	}
	return Slide(from, to)
}

func (a Action) String() string {
	switch a.Type {
	case ThrowAction:
		return fmt.Sprintf("(%s, %s, %s)", a.Type, a.Kind, a.To)
	case PassAction:
		return fmt.Sprintf("(%s)", a.Type)
	}
	return fmt.Sprintf("(%s, %s, %s)", a.Type, a.From, a.To)
}
