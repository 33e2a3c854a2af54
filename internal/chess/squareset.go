package chess

import "math/bits"

// SquareSet is a fixed-width bitset over square indices, one bit per square
// up to MaxSquares. It is a pure value: every operation returns a new set.
type SquareSet [2]uint64

// EmptySquareSet is the set containing no squares.
var EmptySquareSet = SquareSet{}

// NewSquareSet builds a set from the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.With(sq)
	}
	return s
}

// RankSet returns the set of all squares on the given rank.
func RankSet(r Rules, rank int) SquareSet {
	var s SquareSet
	for file := 0; file < r.Files; file++ {
		s = s.With(r.Square(file, rank))
	}
	return s
}

// FileSet returns the set of all squares on the given file.
func FileSet(r Rules, file int) SquareSet {
	var s SquareSet
	for rank := 0; rank < r.Ranks; rank++ {
		s = s.With(r.Square(file, rank))
	}
	return s
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	if sq < 0 || sq >= MaxSquares {
		return false
	}
	return s[sq>>6]>>(uint(sq)&63)&1 == 1
}

// With returns the set with sq added.
func (s SquareSet) With(sq Square) SquareSet {
	if sq >= 0 && sq < MaxSquares {
		s[sq>>6] |= 1 << (uint(sq) & 63)
	}
	return s
}

// Without returns the set with sq removed.
func (s SquareSet) Without(sq Square) SquareSet {
	if sq >= 0 && sq < MaxSquares {
		s[sq>>6] &^= 1 << (uint(sq) & 63)
	}
	return s
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return SquareSet{s[0] | o[0], s[1] | o[1]}
}

// Intersect returns the squares in both sets.
func (s SquareSet) Intersect(o SquareSet) SquareSet {
	return SquareSet{s[0] & o[0], s[1] & o[1]}
}

// Diff returns the squares in s that are not in o.
func (s SquareSet) Diff(o SquareSet) SquareSet {
	return SquareSet{s[0] &^ o[0], s[1] &^ o[1]}
}

// IsEmpty reports whether the set contains no squares.
func (s SquareSet) IsEmpty() bool {
	return s[0] == 0 && s[1] == 0
}

// Size returns the number of squares in the set.
func (s SquareSet) Size() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// First returns the lowest square in the set.
func (s SquareSet) First() (Square, bool) {
	if s[0] != 0 {
		return Square(bits.TrailingZeros64(s[0])), true
	}
	if s[1] != 0 {
		return Square(64 + bits.TrailingZeros64(s[1])), true
	}
	return NoSquare, false
}

// Last returns the highest square in the set.
func (s SquareSet) Last() (Square, bool) {
	if s[1] != 0 {
		return Square(127 - bits.LeadingZeros64(s[1])), true
	}
	if s[0] != 0 {
		return Square(63 - bits.LeadingZeros64(s[0])), true
	}
	return NoSquare, false
}

// Ascending returns the squares of the set in increasing order.
func (s SquareSet) Ascending() []Square {
	squares := make([]Square, 0, s.Size())
	for s[0] != 0 {
		sq := Square(bits.TrailingZeros64(s[0]))
		squares = append(squares, sq)
		s[0] &= s[0] - 1
	}
	for s[1] != 0 {
		sq := Square(64 + bits.TrailingZeros64(s[1]))
		squares = append(squares, sq)
		s[1] &= s[1] - 1
	}
	return squares
}

// Descending returns the squares of the set in decreasing order.
func (s SquareSet) Descending() []Square {
	squares := make([]Square, 0, s.Size())
	for s[1] != 0 {
		sq := Square(127 - bits.LeadingZeros64(s[1]))
		squares = append(squares, sq)
		s[1] &^= 1 << (uint(sq) & 63)
	}
	for s[0] != 0 {
		sq := Square(63 - bits.LeadingZeros64(s[0]))
		squares = append(squares, sq)
		s[0] &^= 1 << uint(sq)
	}
	return squares
}
