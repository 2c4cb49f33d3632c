package game

// Resolve fights every tile occupied by more than one token and returns the
// survivors of each side. A kind dies on a tile iff its predator is present
// there, so a lone kind always survives and all three kinds together wipe the
// tile. Surviving tokens keep their order, IDs and side.
func Resolve(a, b TokenSet) (TokenSet, TokenSet) {
	present := make(map[Hex]uint8, a.Len()+b.Len())
	for _, set := range [2]TokenSet{a, b} {
		for _, t := range set.tokens {
			present[t.Hex] |= kindBit(t.Kind)
		}
	}

	alive := func(t Token) bool {
		return present[t.Hex]&kindBit(t.Kind.Predator()) == 0
	}
	return a.Filter(alive), b.Filter(alive)
}

func kindBit(k Kind) uint8 {
	return 1 << uint(k)
}
