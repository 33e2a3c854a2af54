package fen

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/errors"
)

// ParseBoard parses the piece-placement field against the grid of the given
// rule set. The field lists ranks from the top down, separated by '/', with
// single digits standing for runs of empty squares and an optional '~' after
// a piece marking it promoted.
func ParseBoard(rules chess.Rules, boardPart string) (*chess.Board, error) {
	board := chess.NewBoard(rules)
	rank := rules.Ranks - 1
	file := 0
	for i := 0; i < len(boardPart); i++ {
		c := boardPart[i]
		if c == '/' && file == rules.Files {
			file = 0
			rank--
			continue
		}
		if c >= '1' && c <= '9' {
			file += int(c - '0')
			continue
		}
		if file >= rules.Files || rank < 0 {
			return nil, errors.Wrapf(errors.ErrBoard, "piece out of bounds at offset %d", i)
		}
		piece, ok := CharToPiece(c)
		if !ok {
			return nil, errors.Wrapf(errors.ErrBoard, "unexpected character %q", c)
		}
		if i+1 < len(boardPart) && boardPart[i+1] == '~' {
			piece.Promoted = true
			i++
		}
		board.Set(rules.Square(file, rank), piece)
		file++
	}
	if rank != 0 || file != rules.Files {
		return nil, errors.Wrap(errors.ErrBoard, "incomplete board")
	}
	return board, nil
}

// MakeBoard serializes the piece-placement field, ranks from the top down
// joined with '/'. Runs of empty squares are flushed as digits before each
// piece and at rank end; runs longer than nine squares are split so that the
// single-digit grammar round-trips on wide grids. Promotion markers are
// emitted only when opts.Promoted is set.
func MakeBoard(board *chess.Board, opts Opts) string {
	var sb strings.Builder
	rules := board.Rules
	for rank := rules.Ranks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < rules.Files; file++ {
			piece, ok := board.Get(rules.Square(file, rank))
			if !ok {
				empty++
				continue
			}
			writeEmptyRun(&sb, empty)
			empty = 0
			sb.WriteString(PieceToChar(piece, opts.Promoted))
		}
		writeEmptyRun(&sb, empty)
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func writeEmptyRun(sb *strings.Builder, empty int) {
	for ; empty > 9; empty -= 9 {
		sb.WriteByte('9')
	}
	if empty > 0 {
		fmt.Fprintf(sb, "%d", empty)
	}
}
