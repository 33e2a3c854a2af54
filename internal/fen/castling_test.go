package fen

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/errors"
	"github.com/lgbarn/fen-codec-go/internal/testutil"
)

func mustBoard(t *testing.T, part string) *chess.Board {
	t.Helper()
	board, err := ParseBoard(chess.Standard(), part)
	if err != nil {
		t.Fatalf("ParseBoard(%q): %v", part, err)
	}
	return board
}

func TestParseCastlingDash(t *testing.T) {
	rights, err := ParseCastling(chess.DefaultSetup().Board, "-")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rights.IsEmpty())
}

func TestParseCastlingStandard(t *testing.T) {
	board := chess.DefaultSetup().Board
	rights, err := ParseCastling(board, "KQkq")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rights, chess.NewSquareSet(0, 7, 56, 63))

	rights, err = ParseCastling(board, "Kq")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rights, chess.NewSquareSet(7, 56))
}

func TestParseCastlingShredderLetters(t *testing.T) {
	board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R")
	rights, err := ParseCastling(board, "HAha")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rights, chess.NewSquareSet(0, 7, 56, 63))
}

func TestParseCastlingNearestRook(t *testing.T) {
	// Two rooks on the king's queenside: generic q picks the one
	// nearest the far edge first in scan order, i.e. the lowest file.
	board := mustBoard(t, "4k3/8/8/8/8/8/8/RR2K3")
	rights, err := ParseCastling(board, "Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rights, chess.NewSquareSet(0))

	// Generic k scans from the high file down and stops at the king:
	// with no rook beyond the king there is nothing to record.
	rights, err = ParseCastling(board, "K")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rights.IsEmpty())
}

func TestParseCastlingKingBlocksScan(t *testing.T) {
	// A rook on the wrong side of the king must not be reachable by a
	// generic letter for the other side.
	board := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3")
	rights, err := ParseCastling(board, "K")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rights.IsEmpty())

	rights, err = ParseCastling(board, "Q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rights, chess.NewSquareSet(0))
}

func TestParseCastlingClaimWithoutRook(t *testing.T) {
	// A claimed right with no matching rook adds nothing but is legal.
	board := mustBoard(t, "4k3/8/8/8/8/8/8/4K3")
	rights, err := ParseCastling(board, "KQkq")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rights.IsEmpty())
}

func TestParseCastlingIgnoresOffBackrankRooks(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/R7/8/8/4K3")
	rights, err := ParseCastling(board, "Q")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, rights.IsEmpty())
}

func TestParseCastlingGrammarErrors(t *testing.T) {
	board := chess.DefaultSetup().Board
	tests := []struct {
		name string
		part string
	}{
		{"digit", "K2kq"},
		{"lowercase before uppercase", "kqKQ"},
		{"three per side", "KQAkq"},
		{"bad letter", "KX"},
		{"dash inside", "K-"},
		{"file beyond grid", "Kz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCastling(board, tt.part)
			testutil.AssertError(t, err, tt.part)
			if !stderrors.Is(err, errors.ErrCastling) {
				t.Errorf("error kind = %v; want ErrCastling", err)
			}
		})
	}
}

func TestMakeCastlingStandard(t *testing.T) {
	setup := chess.DefaultSetup()
	testutil.AssertEqual(t, MakeCastling(setup.Board, setup.UnmovedRooks, Opts{}), "KQkq")
	testutil.AssertEqual(t, MakeCastling(setup.Board, setup.UnmovedRooks, Opts{Shredder: true}), "HAha")
	testutil.AssertEqual(t, MakeCastling(setup.Board, chess.NewSquareSet(7), Opts{}), "K")
	testutil.AssertEqual(t, MakeCastling(setup.Board, chess.EmptySquareSet, Opts{}), "-")
}

func TestMakeCastlingFallsBackToFileLetter(t *testing.T) {
	// Two queenside rooks: only the outermost can be described as Q,
	// the inner one keeps its file letter.
	board := mustBoard(t, "4k3/8/8/8/8/8/8/RR2K3")
	rights := chess.NewSquareSet(0, 1)
	testutil.AssertEqual(t, MakeCastling(board, rights, Opts{}), "BQ")
}

func TestMakeCastlingKingOffBackrank(t *testing.T) {
	// With the king away from its back rank no generic letter applies.
	board := mustBoard(t, "4k3/8/8/8/8/4K3/8/R6R")
	rights := chess.NewSquareSet(0, 7)
	testutil.AssertEqual(t, MakeCastling(board, rights, Opts{}), "HA")
}

func TestCastlingRoundTripShredder(t *testing.T) {
	// Chess960-style position: king on b1, both rooks castle-eligible.
	board := mustBoard(t, "1k5r/8/8/8/8/8/8/RK5R")
	rights, err := ParseCastling(board, "HAh")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rights, chess.NewSquareSet(0, 7, 63))

	part := MakeCastling(board, rights, Opts{Shredder: true})
	reparsed, err := ParseCastling(board, part)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, reparsed, rights)
}
