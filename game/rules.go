package game

// Rules is the legality oracle of the wider game. The searcher only asks it
// for long-hop destinations; the referee uses Validate.
type Rules interface {
	// SwingTargets lists the non-adjacent tiles the token at from may reach
	// by hopping over a neighbouring friendly token.
	SwingTargets(b Board, from Hex, own TokenSet) []Hex
	// Validate reports why a is not a legal action for own, or nil.
	Validate(b Board, a Action, own TokenSet, reserve Reserve) error
}
