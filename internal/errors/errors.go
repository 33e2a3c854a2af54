// Package errors provides sentinel errors for the fen-codec tool.
// It defines one sentinel per notation field so that callers can classify
// a parse failure with errors.Is() without inspecting message text.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the notation fields. A parse returns exactly one of
// these (possibly wrapped with context); the first failing field wins and
// no later fields are examined.
var (
	// ErrFen indicates a malformed string overall, e.g. trailing fields
	// or an unmatched pocket bracket.
	ErrFen = errors.New("invalid fen")

	// ErrBoard indicates a malformed piece-placement field.
	ErrBoard = errors.New("invalid board part")

	// ErrPockets indicates a malformed pocket field.
	ErrPockets = errors.New("invalid pockets part")

	// ErrTurn indicates a malformed side-to-move field.
	ErrTurn = errors.New("invalid turn part")

	// ErrCastling indicates a malformed castling-rights field.
	ErrCastling = errors.New("invalid castling part")

	// ErrEpSquare indicates a malformed en passant field.
	ErrEpSquare = errors.New("invalid en passant part")

	// ErrRemainingChecks indicates a malformed remaining-checks field,
	// or both the legacy and the trailing placement used at once.
	ErrRemainingChecks = errors.New("invalid remaining checks part")

	// ErrHalfmoves indicates a malformed halfmove-clock field.
	ErrHalfmoves = errors.New("invalid halfmoves part")

	// ErrFullmoves indicates a malformed fullmove-number field.
	ErrFullmoves = errors.New("invalid fullmoves part")
)

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
