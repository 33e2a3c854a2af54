package chess

// Setup is the full position record: board placement plus the side-effect
// state the notation carries. It is produced whole by a parse and is never
// mutated by serialization.
type Setup struct {
	Board        *Board
	Pockets      *Material
	Turn         Color
	UnmovedRooks SquareSet
	Remaining    *RemainingChecks
	EpSquare     Square
	Halfmoves    int
	Fullmoves    int
}

// DefaultSetup returns the standard initial position: regular 8x8 placement,
// White to move, all four corner rooks castle-eligible, no en passant
// target, clocks at 0 and 1.
func DefaultSetup() *Setup {
	rules := Standard()
	board := NewBoard(rules)
	backrank := []Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < rules.Files; file++ {
		board.Set(rules.Square(file, 0), Piece{Role: backrank[file], Color: White})
		board.Set(rules.Square(file, 1), Piece{Role: Pawn, Color: White})
		board.Set(rules.Square(file, 6), Piece{Role: Pawn, Color: Black})
		board.Set(rules.Square(file, 7), Piece{Role: backrank[file], Color: Black})
	}
	return &Setup{
		Board: board,
		Turn:  White,
		UnmovedRooks: NewSquareSet(
			rules.Square(0, 0), rules.Square(7, 0),
			rules.Square(0, 7), rules.Square(7, 7),
		),
		EpSquare:  NoSquare,
		Halfmoves: 0,
		Fullmoves: 1,
	}
}

// EmptySetup returns a position with an empty board over the given grid and
// all other fields at their defaults.
func EmptySetup(rules Rules) *Setup {
	return &Setup{
		Board:     NewBoard(rules),
		Turn:      White,
		EpSquare:  NoSquare,
		Halfmoves: 0,
		Fullmoves: 1,
	}
}
