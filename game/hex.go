package game

import (
	"fmt"
	"math"
)

// Hex is an axial coordinate. The implicit third coordinate is -R-Q.
type Hex struct {
	R int
	Q int
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d, %d)", h.R, h.Q)
}

// Add returns the coordinate offset by d.
func (h Hex) Add(d Hex) Hex {
	return Hex{R: h.R + d.R, Q: h.Q + d.Q}
}

// Neighbour offsets in enumeration order. Move ordering falls back to this
// order when distances tie, so it must not change.
var adjacentOffsets = [6]Hex{
	{R: 0, Q: -1},
	{R: -1, Q: 0},
	{R: 1, Q: 0},
	{R: 0, Q: 1},
	{R: -1, Q: 1},
	{R: 1, Q: -1},
}

// Adjacent returns the six neighbours of h without filtering by bounds.
func Adjacent(h Hex) [6]Hex {
	var out [6]Hex
	for i, d := range adjacentOffsets {
		out[i] = h.Add(d)
	}
	return out
}

// IsAdjacent reports whether a and b are neighbouring tiles.
func IsAdjacent(a, b Hex) bool {
	return HexDistance(a, b) == 1
}

// HexDistance is the number of steps between a and b on the grid.
func HexDistance(a, b Hex) int {
	dr := a.R - b.R
	dq := a.Q - b.Q
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// EuclideanDistance is the straight-line distance in the skewed axial plane.
// It is a tie-break heuristic only.
func EuclideanDistance(a, b Hex) float64 {
	dr := float64(a.R - b.R)
	dq := float64(a.Q - b.Q)
	return math.Sqrt(dr*dr + dq*dq)
}

// Board is a hexagonal region of the given radius centred on (0, 0).
type Board struct {
	Radius int
}

// StandardBoard is the radius 4 board of the reference game.
var StandardBoard = Board{Radius: 4}

// InBounds reports whether r, q and -r-q all lie within the radius.
func (b Board) InBounds(h Hex) bool {
	s := -h.R - h.Q
	return within(h.R, b.Radius) && within(h.Q, b.Radius) && within(s, b.Radius)
}

// Neighbors returns the in-bounds neighbours of h in adjacency order.
func (b Board) Neighbors(h Hex) []Hex {
	out := make([]Hex, 0, len(adjacentOffsets))
	for _, n := range Adjacent(h) {
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsEdge reports whether h has fewer than six in-bounds neighbours.
func (b Board) IsEdge(h Hex) bool {
	return len(b.Neighbors(h)) < len(adjacentOffsets)
}

// Tiles lists every in-bounds coordinate ordered by r, then q.
func (b Board) Tiles() []Hex {
	var tiles []Hex
	for r := -b.Radius; r <= b.Radius; r++ {
		for q := -b.Radius; q <= b.Radius; q++ {
			if h := (Hex{R: r, Q: q}); b.InBounds(h) {
				tiles = append(tiles, h)
			}
		}
	}
	return tiles
}

func within(v, radius int) bool {
	return v >= -radius && v <= radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
