// Package fen converts between Setup position records and the extended FEN
// text notation: board layout, side to move, castling rights, en passant
// target, move counters, plus piece pockets for drop variants and
// remaining-check counters for check-limited variants.
package fen

import "github.com/lgbarn/fen-codec-go/internal/chess"

// CharToPiece converts a notation letter to a piece. Uppercase letters are
// White, lowercase Black. The second result is false if the letter does not
// name a role.
func CharToPiece(c byte) (chess.Piece, bool) {
	role, ok := chess.RoleFromChar(c)
	if !ok {
		return chess.Piece{}, false
	}
	color := chess.Black
	if c >= 'A' && c <= 'Z' {
		color = chess.White
	}
	return chess.Piece{Role: role, Color: color}, true
}

// PieceToChar converts a piece to its notation letter, case-folded by
// colour. With markPromoted set, promoted pieces gain a '~' suffix.
func PieceToChar(piece chess.Piece, markPromoted bool) string {
	c := piece.Role.Char()
	if piece.Color == chess.White {
		c -= 'a' - 'A'
	}
	if markPromoted && piece.Promoted {
		return string([]byte{c, '~'})
	}
	return string(c)
}
