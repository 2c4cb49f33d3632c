package game

// Outcome is a hypothetical position after one simultaneous move, seen from
// the acting token's side. Acting and Watched hold the post-move positions of
// the two tokens whose moves are being compared.
type Outcome struct {
	Board         Board
	Acting        Token
	Watched       Token
	Own           TokenSet // own tokens after the move, before the battle
	OwnAlive      TokenSet
	OpponentAlive TokenSet
}

// Evaluate scores an Outcome for the acting side; higher is better.
type Evaluate func(Outcome) float64

// Weights parameterises the default position heuristic.
type Weights struct {
	Base         float64 `yaml:"base"`
	Pursuit      float64 `yaml:"pursuit"`       // closing in on prey
	Capture      float64 `yaml:"capture"`       // watched enemy eliminated
	Threat       float64 `yaml:"threat"`        // standing near a predator
	Death        float64 `yaml:"death"`         // acting token eliminated
	FriendlyFire float64 `yaml:"friendly_fire"` // sharing a tile with a hostile ally kind
	Edge         float64 `yaml:"edge"`          // fewer than six neighbours
}

var DefaultWeights = Weights{
	Base:         10,
	Pursuit:      1,
	Capture:      40,
	Threat:       10,
	Death:        50,
	FriendlyFire: 50,
	Edge:         5,
}

// EvaluatePosition scores o with DefaultWeights.
func EvaluatePosition(o Outcome) float64 {
	return DefaultWeights.Score(o)
}

// Score combines proximity to the watched token, capture and death bonuses,
// friendly fire and board-edge penalties. Only prey earn the capture bonus.
func (w Weights) Score(o Outcome) float64 {
	score := w.Base

	switch o.Watched.Kind {
	case o.Acting.Kind.Prey():
		score += w.Pursuit * proximity(o.Acting.Hex, o.Watched.Hex)
		if _, ok := o.OpponentAlive.Token(o.Watched.ID); !ok {
			score += w.Capture
		}
	case o.Acting.Kind.Predator():
		score -= w.Threat * proximity(o.Acting.Hex, o.Watched.Hex)
	}
	if _, ok := o.OwnAlive.Token(o.Acting.ID); !ok {
		score -= w.Death
	}
	if friendlyFire(o.Acting, o.Own) {
		score -= w.FriendlyFire
	}
	if o.Board.IsEdge(o.Acting.Hex) {
		score -= w.Edge
	}
	return score
}

// proximity grows as the tiles get closer: 2 for neighbours, 1.5 at two
// steps, tending to 1 far away. Sharing a tile scores 1; captures are
// rewarded separately.
func proximity(a, b Hex) float64 {
	d := HexDistance(a, b)
	if d == 0 {
		return 1
	}
	return float64(d+1) / float64(d)
}

func friendlyFire(acting Token, own TokenSet) bool {
	for _, t := range own.tokens {
		if t.ID != acting.ID && t.Hex == acting.Hex && t.Kind != acting.Kind {
			return true
		}
	}
	return false
}
