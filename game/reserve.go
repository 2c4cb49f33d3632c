package game

import "fmt"

// Reserve is a side's supply of unthrown tokens. It is a value type.
type Reserve struct {
	counts [len(Kinds)]int
	thrown int
}

// NewReserve returns a reserve holding perKind tokens of every kind.
func NewReserve(perKind int) Reserve {
	var r Reserve
	for i := range r.counts {
		r.counts[i] = perKind
	}
	return r
}

// Remaining is the number of unthrown tokens of kind.
func (r Reserve) Remaining(kind Kind) int {
	return r.counts[kind]
}

// Total is the number of unthrown tokens of any kind.
func (r Reserve) Total() int {
	total := 0
	for _, c := range r.counts {
		total += c
	}
	return total
}

// Thrown is the number of throws made so far.
func (r Reserve) Thrown() int {
	return r.thrown
}

// Available lists the kinds that can still be thrown.
func (r Reserve) Available() []Kind {
	var kinds []Kind
	for _, k := range Kinds {
		if r.counts[k] > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Take removes one token of kind.
func (r Reserve) Take(kind Kind) (Reserve, error) {
	if r.counts[kind] == 0 {
		return r, fmt.Errorf("%w: %s", ErrReserveEmpty, kind)
	}
	r.counts[kind]--
	r.thrown++
	return r, nil
}

// ThrowZone lists the tiles side may throw onto after thrown throws. The zone
// starts at the side's home row and grows one row towards the centre per throw.
func ThrowZone(b Board, side Side, thrown int) []Hex {
	depth := thrown + 1
	var zone []Hex
	for _, h := range b.Tiles() {
		if inThrowZone(b, side, depth, h) {
			zone = append(zone, h)
		}
	}
	return zone
}

func inThrowZone(b Board, side Side, depth int, h Hex) bool {
	if side == Upper {
		return h.R > b.Radius-depth
	}
	return h.R < -b.Radius+depth
}
