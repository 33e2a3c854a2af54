package fen

import (
	"strings"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/errors"
)

// maxPocketLen bounds the pocket field length. Independent of per-piece
// validity; anything longer is rejected outright.
const maxPocketLen = 64

// ParsePockets parses a pocket field into per-side captured-piece counts.
// Every character must be a piece letter.
func ParsePockets(pocketPart string) (*chess.Material, error) {
	if len(pocketPart) > maxPocketLen {
		return nil, errors.Wrapf(errors.ErrPockets, "pocket of %d characters", len(pocketPart))
	}
	var pockets chess.Material
	for i := 0; i < len(pocketPart); i++ {
		piece, ok := CharToPiece(pocketPart[i])
		if !ok {
			return nil, errors.Wrapf(errors.ErrPockets, "unexpected character %q", pocketPart[i])
		}
		pockets[piece.Color][piece.Role]++
	}
	return &pockets, nil
}

// MakePockets serializes pockets: White's letters upper-cased first, then
// Black's, each side's roles in canonical order repeated by count.
func MakePockets(pockets chess.Material) string {
	var sb strings.Builder
	for _, color := range []chess.Color{chess.White, chess.Black} {
		for role := chess.Pawn; role < chess.NumRoles; role++ {
			c := role.Char()
			if color == chess.White {
				c -= 'a' - 'A'
			}
			for n := 0; n < pockets[color][role]; n++ {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}
