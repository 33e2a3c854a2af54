package chess

// Board is a placement of at most one piece per square over the grid of the
// active rule set. Occupancy is held as square sets per colour and per role,
// plus a set of promoted squares, so that backrank and candidate-rook scans
// stay cheap bit operations.
type Board struct {
	Rules    Rules
	ByColor  [2]SquareSet
	ByRole   [NumRoles]SquareSet
	Occupied SquareSet
	Promoted SquareSet
}

// NewBoard creates an empty board over the given grid.
func NewBoard(rules Rules) *Board {
	return &Board{Rules: rules}
}

// Get returns the piece on sq. The second result is false for an empty
// square.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !b.Occupied.Has(sq) {
		return Piece{}, false
	}
	piece := Piece{Promoted: b.Promoted.Has(sq)}
	if b.ByColor[Black].Has(sq) {
		piece.Color = Black
	}
	for r := Pawn; r < NumRoles; r++ {
		if b.ByRole[r].Has(sq) {
			piece.Role = r
			break
		}
	}
	return piece, true
}

// Remove clears sq and returns the piece that occupied it, if any.
func (b *Board) Remove(sq Square) (Piece, bool) {
	piece, ok := b.Get(sq)
	if !ok {
		return Piece{}, false
	}
	b.Occupied = b.Occupied.Without(sq)
	b.ByColor[piece.Color] = b.ByColor[piece.Color].Without(sq)
	b.ByRole[piece.Role] = b.ByRole[piece.Role].Without(sq)
	b.Promoted = b.Promoted.Without(sq)
	return piece, true
}

// Set places a piece on sq, replacing any existing occupant.
func (b *Board) Set(sq Square, piece Piece) {
	b.Remove(sq)
	b.Occupied = b.Occupied.With(sq)
	b.ByColor[piece.Color] = b.ByColor[piece.Color].With(sq)
	b.ByRole[piece.Role] = b.ByRole[piece.Role].With(sq)
	if piece.Promoted {
		b.Promoted = b.Promoted.With(sq)
	}
}

// Pieces returns the squares holding pieces of the given colour and role.
func (b *Board) Pieces(c Color, r Role) SquareSet {
	return b.ByColor[c].Intersect(b.ByRole[r])
}

// KingOf returns the square of the given side's king. The second result is
// false if no king of that colour is on the board.
func (b *Board) KingOf(c Color) (Square, bool) {
	return b.Pieces(c, King).Diff(b.Promoted).First()
}

// Equal reports whether two boards hold the same placement over the same
// grid.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return *b == *o
}
