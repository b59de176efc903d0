package guess

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

const (
	banner = "Guess the number!\n"
	prompt = "Please input your guess.\n"
)

func TestPlay(t *testing.T) {
	tests := []struct {
		name         string
		target       uint32
		input        string
		wantOut      string
		wantErr      error
		wantAttempts int
	}{
		{
			name:         "first attempt wins",
			target:       42,
			input:        "42\n",
			wantOut:      banner + prompt + "You guessed: 42\nYou win!\n",
			wantAttempts: 1,
		},
		{
			name:   "small then big then win",
			target: 50,
			input:  "10\n90\n50\n",
			wantOut: banner +
				prompt + "You guessed: 10\nToo small!\n" +
				prompt + "You guessed: 90\nToo big!\n" +
				prompt + "You guessed: 50\nYou win!\n",
			wantAttempts: 3,
		},
		{
			name:   "garbage only re-prompts",
			target: 7,
			input:  "abc\n\n-1\n 7 \n",
			wantOut: banner +
				prompt + prompt + prompt +
				prompt + "You guessed: 7\nYou win!\n",
			wantAttempts: 1,
		},
		{
			name:         "last line without newline",
			target:       3,
			input:        "3",
			wantOut:      banner + prompt + "You guessed: 3\nYou win!\n",
			wantAttempts: 1,
		},
		{
			name:         "input ends before win",
			target:       3,
			input:        "1\n",
			wantOut:      banner + prompt + "You guessed: 1\nToo small!\n" + prompt,
			wantErr:      ErrInputClosed,
			wantAttempts: 1,
		},
		{
			name:    "empty input",
			target:  3,
			input:   "",
			wantOut: banner + prompt,
			wantErr: ErrInputClosed,
		},
		{
			name:    "invalid utf8",
			target:  3,
			input:   "\xff\xfe\n3\n",
			wantOut: banner + prompt,
			wantErr: ErrInvalidUTF8,
		},
		{
			name:         "lines after win are not read",
			target:       5,
			input:        "5\n6\n",
			wantOut:      banner + prompt + "You guessed: 5\nYou win!\n",
			wantAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(FixedSource(tt.target))
			var out bytes.Buffer
			err := Play(g, strings.NewReader(tt.input), &out)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Play() unexpected err: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Play() err = %v, want %v", err, tt.wantErr)
			}
			if got := out.String(); got != tt.wantOut {
				t.Errorf("output mismatch\n got: %q\nwant: %q", got, tt.wantOut)
			}
			if g.Attempts != tt.wantAttempts {
				t.Errorf("Attempts = %d, want %d", g.Attempts, tt.wantAttempts)
			}
			if g.Won != (tt.wantErr == nil) {
				t.Errorf("Won = %v", g.Won)
			}
		})
	}
}

func TestPlayReadFault(t *testing.T) {
	boom := errors.New("boom")
	g := New(FixedSource(1))
	var out bytes.Buffer
	err := Play(g, iotest.ErrReader(boom), &out)
	if !errors.Is(err, boom) {
		t.Fatalf("Play() err = %v, want wrapped boom", err)
	}
	if errors.Is(err, ErrInputClosed) {
		t.Errorf("read fault reported as closed input")
	}
}

// Same guesses against different targets take the same path whenever
// the per-guess orderings agree.
func TestPlayControlFlowIndependentOfSeed(t *testing.T) {
	run := func(target uint32, input string) string {
		var out bytes.Buffer
		if err := Play(New(FixedSource(target)), strings.NewReader(input), &out); err != nil {
			t.Fatalf("Play(target=%d): %v", target, err)
		}
		return out.String()
	}
	a := run(60, "1\n100\n60\n")
	b := run(61, "1\n100\n61\n")
	strip := func(s string) string {
		return strings.NewReplacer("60", "N", "61", "N").Replace(s)
	}
	if strip(a) != strip(b) {
		t.Errorf("control flow differs:\n%s\n---\n%s", a, b)
	}
}
