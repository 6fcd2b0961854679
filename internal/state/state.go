package state

import (
	"context"
	"errors"
	"fmt"

	"go-hangman/internal/scoring"

	"github.com/looplab/fsm"
)

const (
	// MaxWrongGuesses is the number of misses that loses a round.
	MaxWrongGuesses = 6
	// Stages is the number of gallows pictures, indexed 0..MaxWrongGuesses.
	Stages = MaxWrongGuesses + 1
)

// Phases of a round.
const (
	PhaseNotStarted = "notStarted"
	PhaseInProgress = "inProgress"
	PhaseWon        = "won"
	PhaseLost       = "lost"
)

var (
	// ErrNotStarted is returned when a round is queried or played before it began.
	ErrNotStarted = errors.New("game not started")
	// ErrGameAlreadyOver is returned for guesses made after a round was won or lost.
	ErrGameAlreadyOver = errors.New("game already over")
)

// OutcomeKind describes what a guess did.
type OutcomeKind int

const (
	OutcomeInvalid OutcomeKind = iota
	OutcomeAlreadyGuessed
	OutcomeHit
	OutcomeMiss
	OutcomeWon
	OutcomeLost
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeAlreadyGuessed:
		return "already_guessed"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of one guess. Points is only set when Kind is OutcomeWon.
type Outcome struct {
	Kind    OutcomeKind
	Letter  rune
	Message string
	Points  int
}

// Terminal reports whether the guess ended the round.
func (o Outcome) Terminal() bool {
	return o.Kind == OutcomeWon || o.Kind == OutcomeLost
}

type State struct {
	Word         *MaskedWord
	WrongGuesses int
	Points       int // awarded for the current round, set on a win
	Player       *scoring.PlayerRecord
	FSM          *fsm.FSM

	creditErr error
}

// NewState creates a round in the notStarted phase crediting the given player.
func NewState(player *scoring.PlayerRecord) *State {
	s := &State{Player: player}

	s.FSM = fsm.NewFSM(
		PhaseNotStarted,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{PhaseNotStarted, PhaseWon, PhaseLost}, Dst: PhaseInProgress},
		{Name: "win", Src: []string{PhaseInProgress}, Dst: PhaseWon},
		{Name: "lose", Src: []string{PhaseInProgress}, Dst: PhaseLost},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + PhaseWon: func(_ context.Context, e *fsm.Event) {
			points := 0
			if len(e.Args) > 0 {
				p, ok := e.Args[0].(int)
				if !ok {
					s.creditErr = fmt.Errorf("win points: unexpected %T", e.Args[0])
					return
				}
				points = p
			}
			// Score first so a rejected amount leaves the record untouched.
			if err := s.Player.AddScore(points); err != nil {
				s.creditErr = err
				return
			}
			s.Points = points
			s.Player.RecordWin()
		},
		"enter_" + PhaseLost: func(_ context.Context, e *fsm.Event) {
			s.Player.RecordLoss()
		},
	}
}

// Start begins a round over secret. An unfinished round is abandoned without
// crediting the player.
func (s *State) Start(secret string) error {
	s.Word = NewMaskedWord(secret)
	s.WrongGuesses = 0
	s.Points = 0

	if s.FSM.Is(PhaseInProgress) {
		return nil
	}
	if err := s.FSM.Event(context.Background(), "start"); err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	return nil
}

// Guess classifies raw and applies it to the round.
// Invalid and repeated letters come back as outcomes with a nil error.
func (s *State) Guess(raw string) (Outcome, error) {
	switch s.FSM.Current() {
	case PhaseNotStarted:
		return Outcome{}, ErrNotStarted
	case PhaseWon, PhaseLost:
		return Outcome{}, ErrGameAlreadyOver
	}

	v := Classify(raw, s.Word)
	switch v.Kind {
	case Invalid:
		return Outcome{Kind: OutcomeInvalid, Message: v.Message}, nil
	case AlreadyGuessed:
		return Outcome{Kind: OutcomeAlreadyGuessed, Letter: v.Letter, Message: v.Message}, nil
	}

	if s.Word.Reveal(v.Letter) {
		if !s.Word.IsSolved() {
			return Outcome{
				Kind:    OutcomeHit,
				Letter:  v.Letter,
				Message: fmt.Sprintf("Good guess! '%c' is in the word.", v.Letter),
			}, nil
		}

		// Scored on the misses made before this final guess.
		points := scoring.WinPoints(MaxWrongGuesses, s.WrongGuesses)
		if points < 0 {
			return Outcome{}, fmt.Errorf("credit win: %w", scoring.ErrNegativePoints)
		}
		if err := s.end("win", points); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Kind:    OutcomeWon,
			Letter:  v.Letter,
			Message: fmt.Sprintf("Correct! You won! +%d points", points),
			Points:  points,
		}, nil
	}

	s.WrongGuesses++
	if s.WrongGuesses >= MaxWrongGuesses {
		if err := s.end("lose"); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Kind:    OutcomeLost,
			Letter:  v.Letter,
			Message: fmt.Sprintf("Wrong! The word was: %s", s.Word.Secret()),
		}, nil
	}

	return Outcome{
		Kind:    OutcomeMiss,
		Letter:  v.Letter,
		Message: fmt.Sprintf("Sorry, '%c' is not in the word.", v.Letter),
	}, nil
}

func (s *State) end(event string, args ...any) error {
	s.creditErr = nil
	if err := s.FSM.Event(context.Background(), event, args...); err != nil {
		return fmt.Errorf("%s round: %w", event, err)
	}
	if s.creditErr != nil {
		return fmt.Errorf("credit %s: %w", s.Player.Name(), s.creditErr)
	}
	return nil
}

func (s *State) Phase() string {
	return s.FSM.Current()
}

func (s *State) Started() bool {
	return !s.FSM.Is(PhaseNotStarted)
}

func (s *State) GameOver() bool {
	return s.FSM.Is(PhaseWon) || s.FSM.Is(PhaseLost)
}

func (s *State) Won() bool {
	return s.FSM.Is(PhaseWon)
}

// Stage returns the gallows picture index for the current miss count.
func (s *State) Stage() int {
	return min(s.WrongGuesses, MaxWrongGuesses)
}
