// internal/guess/engine.go
//
// Game engine for a single guessing session.
// Responsibilities:
//   - Create new games with a target drawn once from a Source.
//   - Parse raw input lines into guesses.
//   - Compare guesses to the target and track the win.

package guess

import (
	"cmp"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidGuess = errors.New("invalid guess")
	ErrFinished     = errors.New("game finished")
)

// New constructs a game whose target is drawn from src.
func New(src Source) *Game {
	return &Game{
		ID:     randomID(),
		Target: src.Target(),
	}
}

// ParseGuess trims surrounding whitespace and parses an unsigned
// 32-bit decimal. One leading '+' is accepted.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(line), "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrInvalidGuess
	}
	return uint32(n), nil
}

// Compare orders guess against target.
func Compare(guess, target uint32) Outcome {
	switch cmp.Compare(guess, target) {
	case -1:
		return OutcomeTooSmall
	case 1:
		return OutcomeTooBig
	default:
		return OutcomeWin
	}
}

// ApplyGuess counts one attempt and compares it with the target.
// Once the game is won every further call fails with ErrFinished.
func (g *Game) ApplyGuess(guess uint32) (Outcome, error) {
	if g.Won {
		return OutcomeWin, ErrFinished
	}
	g.Attempts++
	o := Compare(guess, g.Target)
	if o == OutcomeWin {
		g.Won = true
	}
	return o, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
