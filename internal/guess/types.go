// internal/guess/types.go
//
// Core type definitions for the number guessing game.
// Defines:
//   - Outcome: result of comparing one guess with the target.
//   - State:   phase of the prompt loop (see Play).
//   - Game:    state for a single run of the game.

package guess

// Outcome represents the result of a single three-way comparison.
// Possible values:
//   - "too_small": guess is below the target, keep playing.
//   - "too_big":   guess is above the target, keep playing.
//   - "win":       guess equals the target, game over.
type Outcome string

const (
	OutcomeTooSmall Outcome = "too_small"
	OutcomeTooBig   Outcome = "too_big"
	OutcomeWin      Outcome = "win"
)

// Message is the line printed to the player for o.
func (o Outcome) Message() string {
	switch o {
	case OutcomeTooSmall:
		return "Too small!"
	case OutcomeTooBig:
		return "Too big!"
	case OutcomeWin:
		return "You win!"
	}
	return ""
}

// State is a phase of the prompt loop.
//
//	prompting  --line-->        validating
//	validating --parse error--> prompting
//	validating --parsed-->      comparing
//	comparing  --unequal-->     prompting
//	comparing  --equal-->       won (terminal)
type State string

const (
	StatePrompting  State = "prompting"
	StateValidating State = "validating"
	StateComparing  State = "comparing"
	StateWon        State = "won"
)

// Game holds the state of a single guessing session.
type Game struct {
	ID       string // Random hex string, correlates log lines.
	Target   uint32 // Number to guess, in [MinTarget, MaxTarget]. Never changes.
	Attempts int    // Comparisons made so far (parse failures excluded).
	Won      bool   // True once a guess matched Target.
}
