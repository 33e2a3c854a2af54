package fen

import (
	"strings"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/errors"
)

// Notation constants for the standard starting position and the empty
// board, each in three granularities: board only, position without move
// counters (EPD), and the full notation.
const (
	InitialBoardFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	InitialEPD      = InitialBoardFEN + " w KQkq -"
	InitialFEN      = InitialEPD + " 0 1"

	EmptyBoardFEN = "8/8/8/8/8/8/8/8"
	EmptyEPD      = EmptyBoardFEN + " w - -"
	EmptyFEN      = EmptyEPD + " 0 1"
)

// Opts selects serialization variants. The zero value produces the common
// form: generic castling letters where possible, move counters included,
// no promotion markers.
type Opts struct {
	// Shredder forces explicit file letters for all castling rights.
	Shredder bool
	// EPD omits the trailing halfmove and fullmove counters.
	EPD bool
	// Promoted emits '~' markers after promoted pieces.
	Promoted bool
}

// Parse decodes a position record from its text notation under the given
// rule set. Fields are space separated and optional from the turn field
// onward; the first malformed field aborts the parse with its field's
// error kind.
func Parse(rules chess.Rules, fen string) (*chess.Setup, error) {
	fields := strings.Split(fen, " ")
	shift := func() (string, bool) {
		if len(fields) == 0 {
			return "", false
		}
		field := fields[0]
		fields = fields[1:]
		return field, true
	}

	boardPart, _ := shift()
	board, pockets, err := parseBoardAndPockets(rules, boardPart)
	if err != nil {
		return nil, err
	}

	turn := chess.White
	if turnPart, ok := shift(); ok {
		switch turnPart {
		case "w":
			turn = chess.White
		case "b":
			turn = chess.Black
		default:
			return nil, errors.Wrapf(errors.ErrTurn, "bad token %q", turnPart)
		}
	}

	var unmovedRooks chess.SquareSet
	if castlingPart, ok := shift(); ok {
		unmovedRooks, err = ParseCastling(board, castlingPart)
		if err != nil {
			return nil, err
		}
	}

	epSquare := chess.NoSquare
	if epPart, ok := shift(); ok && epPart != "-" {
		sq, valid := rules.ParseSquareName(epPart)
		if !valid {
			return nil, errors.Wrapf(errors.ErrEpSquare, "bad square %q", epPart)
		}
		epSquare = sq
	}

	// A '+' where halfmoves belong is a remaining-checks field in its
	// legacy pre-clock placement; remember it and re-read the clock.
	var early *chess.RemainingChecks
	halfmovePart, hasHalfmoves := shift()
	if hasHalfmoves && strings.ContainsRune(halfmovePart, '+') {
		early, err = ParseRemainingChecks(halfmovePart)
		if err != nil {
			return nil, err
		}
		halfmovePart, hasHalfmoves = shift()
	}
	halfmoves := 0
	if hasHalfmoves {
		n, valid := parseSmallUint(halfmovePart)
		if !valid {
			return nil, errors.Wrapf(errors.ErrHalfmoves, "bad count %q", halfmovePart)
		}
		halfmoves = n
	}

	fullmoves := 1
	if fullmovePart, ok := shift(); ok {
		n, valid := parseSmallUint(fullmovePart)
		if !valid {
			return nil, errors.Wrapf(errors.ErrFullmoves, "bad count %q", fullmovePart)
		}
		if n > 1 {
			fullmoves = n
		}
	}

	remaining := early
	if checksPart, ok := shift(); ok {
		if early != nil {
			return nil, errors.Wrap(errors.ErrRemainingChecks, "both legacy and trailing fields present")
		}
		remaining, err = ParseRemainingChecks(checksPart)
		if err != nil {
			return nil, err
		}
	}

	if len(fields) > 0 {
		return nil, errors.Wrapf(errors.ErrFen, "%d trailing fields", len(fields))
	}

	return &chess.Setup{
		Board:        board,
		Pockets:      pockets,
		Turn:         turn,
		UnmovedRooks: unmovedRooks,
		Remaining:    remaining,
		EpSquare:     epSquare,
		Halfmoves:    halfmoves,
		Fullmoves:    fullmoves,
	}, nil
}

// parseBoardAndPockets splits the board field into placement and pocket.
// The pocket is either a bracketed suffix or, failing that, one extra
// '/'-delimited segment beyond the grid's rank count.
func parseBoardAndPockets(rules chess.Rules, boardPart string) (*chess.Board, *chess.Material, error) {
	if strings.HasSuffix(boardPart, "]") {
		open := strings.IndexByte(boardPart, '[')
		if open == -1 {
			return nil, nil, errors.Wrap(errors.ErrFen, "unmatched ']'")
		}
		board, err := ParseBoard(rules, boardPart[:open])
		if err != nil {
			return nil, nil, err
		}
		pockets, err := ParsePockets(boardPart[open+1 : len(boardPart)-1])
		if err != nil {
			return nil, nil, err
		}
		return board, pockets, nil
	}
	pocketStart := nthIndexByte(boardPart, '/', rules.Ranks-1)
	if pocketStart == -1 {
		board, err := ParseBoard(rules, boardPart)
		return board, nil, err
	}
	board, err := ParseBoard(rules, boardPart[:pocketStart])
	if err != nil {
		return nil, nil, err
	}
	pockets, err := ParsePockets(boardPart[pocketStart+1:])
	if err != nil {
		return nil, nil, err
	}
	return board, pockets, nil
}

// nthIndexByte returns the index of the zero-based n-th occurrence of c in
// s, or -1.
func nthIndexByte(s string, c byte, n int) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			if n == 0 {
				return i
			}
			n--
		}
	}
	return -1
}

// Make encodes a position record into its text notation. Serialization
// never fails: move counters outside the representable range are clamped.
func Make(setup *chess.Setup, opts Opts) string {
	parts := make([]string, 0, 7)

	boardPart := MakeBoard(setup.Board, opts)
	if setup.Pockets != nil {
		boardPart += "[" + MakePockets(*setup.Pockets) + "]"
	}
	parts = append(parts, boardPart)

	if setup.Turn == chess.White {
		parts = append(parts, "w")
	} else {
		parts = append(parts, "b")
	}

	parts = append(parts, MakeCastling(setup.Board, setup.UnmovedRooks, opts))

	if setup.EpSquare != chess.NoSquare {
		parts = append(parts, setup.Board.Rules.SquareName(setup.EpSquare))
	} else {
		parts = append(parts, "-")
	}

	if setup.Remaining != nil {
		parts = append(parts, MakeRemainingChecks(*setup.Remaining))
	}

	if !opts.EPD {
		parts = append(parts,
			formatClamped(setup.Halfmoves, 0, 9999),
			formatClamped(setup.Fullmoves, 1, 9999))
	}

	return strings.Join(parts, " ")
}

// formatClamped formats n clamped into [min, max].
func formatClamped(n, min, max int) string {
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	digits := [4]byte{}
	i := len(digits)
	for {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return string(digits[i:])
}
