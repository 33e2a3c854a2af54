package fen

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fen-codec-go/internal/chess"
	"github.com/lgbarn/fen-codec-go/internal/errors"
)

// checkLimit is the fixed ceiling of the remaining-check counters. The
// legacy count-down form converts against this limit regardless of the
// variant's actual threshold; no live game produces the legacy form, so the
// highest mode is assumed.
const checkLimit = 5

// ParseRemainingChecks parses a remaining-checks field. Two shapes are
// accepted: the current "a+b" giving remaining checks directly, and the
// legacy "+a+b" count-down form converted to checkLimit minus each value.
func ParseRemainingChecks(part string) (*chess.RemainingChecks, error) {
	parts := strings.Split(part, "+")
	switch {
	case len(parts) == 3 && parts[0] == "":
		white, okW := parseSmallUint(parts[1])
		black, okB := parseSmallUint(parts[2])
		if !okW || !okB || white > checkLimit || black > checkLimit {
			return nil, errors.Wrapf(errors.ErrRemainingChecks, "bad legacy counters %q", part)
		}
		return &chess.RemainingChecks{White: checkLimit - white, Black: checkLimit - black}, nil
	case len(parts) == 2:
		white, okW := parseSmallUint(parts[0])
		black, okB := parseSmallUint(parts[1])
		if !okW || !okB || white > checkLimit || black > checkLimit {
			return nil, errors.Wrapf(errors.ErrRemainingChecks, "bad counters %q", part)
		}
		return &chess.RemainingChecks{White: white, Black: black}, nil
	default:
		return nil, errors.Wrapf(errors.ErrRemainingChecks, "bad shape %q", part)
	}
}

// MakeRemainingChecks serializes counters in the current "a+b" form. The
// legacy form is never produced.
func MakeRemainingChecks(checks chess.RemainingChecks) string {
	return fmt.Sprintf("%d+%d", checks.White, checks.Black)
}

// parseSmallUint parses a run of one to four ASCII digits. The second
// result is false for anything else.
func parseSmallUint(s string) (int, bool) {
	if len(s) < 1 || len(s) > 4 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
