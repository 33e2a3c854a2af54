package chess

import "strconv"

// Square identifies a board square as file + rank*files for the active
// rule set. NoSquare marks an absent optional square.
type Square int

// NoSquare is the sentinel for "no square", e.g. no en passant target.
const NoSquare Square = -1

// MaxSquares bounds the grid size supported by SquareSet.
const MaxSquares = 128

// MaxFiles bounds the file count so that file letters stay within 'a'..'l'.
const MaxFiles = 12

// Rules describes the board dimensions of the active variant. The codec
// needs nothing else from the rule set.
type Rules struct {
	Files int
	Ranks int
}

// Standard returns the regular 8x8 grid.
func Standard() Rules {
	return Rules{Files: 8, Ranks: 8}
}

// Valid reports whether the dimensions fit the square index space.
func (r Rules) Valid() bool {
	return r.Files >= 1 && r.Files <= MaxFiles &&
		r.Ranks >= 1 && r.Files*r.Ranks <= MaxSquares
}

// NumSquares returns the total square count of the grid.
func (r Rules) NumSquares() int {
	return r.Files * r.Ranks
}

// Square builds a square index from file and rank coordinates.
func (r Rules) Square(file, rank int) Square {
	return Square(file + rank*r.Files)
}

// File returns the zero-based file of a square.
func (r Rules) File(sq Square) int {
	return int(sq) % r.Files
}

// Rank returns the zero-based rank of a square.
func (r Rules) Rank(sq Square) int {
	return int(sq) / r.Files
}

// Contains reports whether sq lies on the grid.
func (r Rules) Contains(sq Square) bool {
	return sq >= 0 && int(sq) < r.NumSquares()
}

// Backrank returns the zero-based rank on which a side's king and castling
// rooks start: rank 0 for White, the top rank for Black.
func (r Rules) Backrank(c Color) int {
	if c == White {
		return 0
	}
	return r.Ranks - 1
}

// FileChar returns the letter naming a file, 'a' for file 0.
func FileChar(file int) byte {
	return byte('a' + file)
}

// SquareName returns the algebraic name of a square, e.g. "e3". Ranks ten
// and above use two digits.
func (r Rules) SquareName(sq Square) string {
	return string(FileChar(r.File(sq))) + strconv.Itoa(r.Rank(sq)+1)
}

// ParseSquareName parses an algebraic square name against the grid. The
// second result is false for names that are malformed or off the board.
func (r Rules) ParseSquareName(name string) (Square, bool) {
	if len(name) < 2 || len(name) > 3 {
		return NoSquare, false
	}
	file := int(name[0]) - 'a'
	if file < 0 || file >= r.Files {
		return NoSquare, false
	}
	if name[1] == '0' {
		return NoSquare, false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return NoSquare, false
		}
	}
	rank, err := strconv.Atoi(name[1:])
	if err != nil || rank < 1 || rank > r.Ranks {
		return NoSquare, false
	}
	return r.Square(file, rank-1), true
}
