// Package chess provides the core position types consumed by the FEN codec:
// colours, roles, squares, square sets, boards, pockets and the Setup record.
package chess

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Role represents a piece type. The declaration order is the canonical
// pocket order used when serializing captured material.
type Role int

const (
	Pawn Role = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumRoles
)

var roleNames = []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

const roleChars = "pnbrqk"

// String returns the string representation of a role.
func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "Unknown"
}

// Char returns the lowercase notation letter of a role.
func (r Role) Char() byte {
	if r >= 0 && int(r) < len(roleChars) {
		return roleChars[r]
	}
	return '?'
}

// RoleFromChar returns the role for a notation letter, matching
// case-insensitively. The second result is false if the letter does not
// name a role.
func RoleFromChar(c byte) (Role, bool) {
	lower := c | 0x20
	for r := Pawn; r < NumRoles; r++ {
		if roleChars[r] == lower {
			return r, true
		}
	}
	return 0, false
}

// Piece is a role with a colour and an optional promoted flag. The promoted
// flag marks pieces that reached their role via pawn promotion, which drop
// variants demote back to pawns on capture.
type Piece struct {
	Role     Role
	Color    Color
	Promoted bool
}

// RemainingChecks tracks how many checks each side may still deliver in
// check-limited variants. Both counters stay within [0, 5].
type RemainingChecks struct {
	White int
	Black int
}

// ByColor returns the counter for the given side.
func (r RemainingChecks) ByColor(c Color) int {
	if c == White {
		return r.White
	}
	return r.Black
}

// MaterialSide counts captured pieces of one colour, indexed by Role.
type MaterialSide [NumRoles]int

// IsEmpty reports whether the side holds no pieces.
func (m MaterialSide) IsEmpty() bool {
	for _, n := range m {
		if n != 0 {
			return false
		}
	}
	return true
}

// Material is a pair of pockets, indexed by Color.
type Material [2]MaterialSide

// IsEmpty reports whether both pockets are empty.
func (m Material) IsEmpty() bool {
	return m[White].IsEmpty() && m[Black].IsEmpty()
}

// Add returns the material with one more piece of the given kind.
func (m Material) Add(c Color, r Role) Material {
	m[c][r]++
	return m
}
