package guess

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInputClosed is returned when input ends before the game is won.
	ErrInputClosed = errors.New("input closed")
	// ErrInvalidUTF8 is returned for a line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Play runs the prompt loop for g until the target is guessed.
//
// Lines that do not parse as a guess are dropped and the player is
// prompted again, with no limit. Returning nil means the game was won;
// any error is fatal for the session.
func Play(g *Game, in io.Reader, out io.Writer) error {
	rd := bufio.NewReader(in)
	logger := log.With().Str("game", g.ID).Logger()

	fmt.Fprintln(out, "Guess the number!")

	state := StatePrompting
	var line string
	var n uint32
	for {
		logger.Debug().Str("state", string(state)).Msg("transition")
		switch state {
		case StatePrompting:
			fmt.Fprintln(out, "Please input your guess.")
			var err error
			if line, err = readLine(rd); err != nil {
				return err
			}
			state = StateValidating

		case StateValidating:
			v, err := ParseGuess(line)
			if err != nil {
				logger.Debug().Str("input", line).Msg("discarding unparsable guess")
				state = StatePrompting
				continue
			}
			n = v
			state = StateComparing

		case StateComparing:
			fmt.Fprintf(out, "You guessed: %d\n", n)
			o, err := g.ApplyGuess(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, o.Message())
			logger.Debug().Uint32("guess", n).Str("outcome", string(o)).Int("attempts", g.Attempts).Msg("compared")
			if o == OutcomeWin {
				state = StateWon
			} else {
				state = StatePrompting
			}

		case StateWon:
			return nil
		}
	}
}

// readLine returns the next line including its terminator. A final
// unterminated line is returned as-is; the read after it reports
// ErrInputClosed.
func readLine(rd *bufio.Reader) (string, error) {
	line, err := rd.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read guess: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}
	return line, nil
}
