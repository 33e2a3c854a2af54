package fen

import (
	"strings"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/errors"
)

// ParseCastling parses a castling-rights field against a parsed board and
// returns the set of squares holding rooks still eligible to castle.
//
// The field is "-" or up to two uppercase characters followed by up to two
// lowercase ones, each either k/q (generic kingside/queenside) or a file
// letter (explicit Shredder form), case selecting the side. A generic letter
// picks the nearest rook to the king from the requested wing: candidates on
// the side's occupied backrank are scanned queenside-first for q, kingside-
// first for k, and the scan stops at the side's own unpromoted king. A
// character whose scan finds no rook contributes nothing; that is legal.
func ParseCastling(board *chess.Board, castlingPart string) (chess.SquareSet, error) {
	var rights chess.SquareSet
	if castlingPart == "-" {
		return rights, nil
	}
	rules := board.Rules
	if err := checkCastlingGrammar(rules, castlingPart); err != nil {
		return rights, err
	}
	for i := 0; i < len(castlingPart); i++ {
		c := castlingPart[i]
		color := chess.Black
		if c >= 'A' && c <= 'Z' {
			color = chess.White
		}
		lower := c | 0x20
		backrank := chess.RankSet(rules, rules.Backrank(color)).Intersect(board.ByColor[color])
		var candidates []chess.Square
		switch lower {
		case 'q':
			candidates = backrank.Ascending()
		case 'k':
			candidates = backrank.Descending()
		default:
			candidates = chess.FileSet(rules, int(lower-'a')).Intersect(backrank).Ascending()
		}
		for _, sq := range candidates {
			if board.Pieces(color, chess.King).Has(sq) && !board.Promoted.Has(sq) {
				break
			}
			if board.ByRole[chess.Rook].Has(sq) {
				rights = rights.With(sq)
				break
			}
		}
	}
	return rights, nil
}

// checkCastlingGrammar validates the character classes, counts and case
// ordering of a castling field. Checked character by character so every
// rejection is attributable to an offset.
func checkCastlingGrammar(rules chess.Rules, castlingPart string) error {
	i := 0
	for ; i < len(castlingPart) && isCastlingChar(rules, castlingPart[i], chess.White); i++ {
	}
	upper := i
	if upper > 2 {
		return errors.Wrap(errors.ErrCastling, "more than two rights per side")
	}
	for ; i < len(castlingPart) && isCastlingChar(rules, castlingPart[i], chess.Black); i++ {
	}
	if i-upper > 2 {
		return errors.Wrap(errors.ErrCastling, "more than two rights per side")
	}
	if i != len(castlingPart) {
		return errors.Wrapf(errors.ErrCastling, "unexpected character %q at offset %d", castlingPart[i], i)
	}
	return nil
}

// isCastlingChar reports whether c is a castling character of the given
// side: K/Q, k/q, or a file letter within the grid, case matching the side.
func isCastlingChar(rules chess.Rules, c byte, color chess.Color) bool {
	if color == chess.White {
		if c < 'A' || c > 'Z' {
			return false
		}
		c |= 0x20
	}
	if c == 'k' || c == 'q' {
		return true
	}
	return c >= 'a' && int(c-'a') < rules.Files
}

// MakeCastling serializes unmoved rooks. For each side whose king stands on
// its back rank, the side's castle-eligible backrank rooks are emitted in
// decreasing square order; outside shredder mode the outermost rook on each
// wing of the king collapses to the generic K/Q letter, every other rook
// keeps its explicit file letter. Returns "-" when no side has rights.
func MakeCastling(board *chess.Board, unmovedRooks chess.SquareSet, opts Opts) string {
	var sb strings.Builder
	rules := board.Rules
	for _, color := range []chess.Color{chess.White, chess.Black} {
		backrank := chess.RankSet(rules, rules.Backrank(color))
		king, hasKing := board.KingOf(color)
		if hasKing && !backrank.Has(king) {
			hasKing = false
		}
		candidates := board.Pieces(color, chess.Rook).Intersect(backrank)
		first, _ := candidates.First()
		last, _ := candidates.Last()
		for _, rook := range unmovedRooks.Intersect(candidates).Descending() {
			var c byte
			switch {
			case !opts.Shredder && rook == first && hasKing && rook < king:
				c = 'q'
			case !opts.Shredder && rook == last && hasKing && king < rook:
				c = 'k'
			default:
				c = chess.FileChar(rules.File(rook))
			}
			if color == chess.White {
				c -= 'a' - 'A'
			}
			sb.WriteByte(c)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
