package game

import (
	"go-hangman/internal/scoring"
	"go-hangman/internal/words"
)

// Session is a series of rounds played by one player, as in a play-again loop.
type Session struct {
	CurrentGame *Game
	History     scoring.History
	Rounds      int

	recorded bool
}

// NewSession creates a session and starts its first round.
func NewSession(source *words.Source, player *scoring.PlayerRecord, opts ...Option) (*Session, error) {
	s := &Session{
		CurrentGame: New(source, player, opts...),
	}

	if err := s.NextRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewCustomSession creates a two-player session. No word is drawn: each round
// starts with NextRoundWith once the other player has chosen a secret.
func NewCustomSession(player *scoring.PlayerRecord, opts ...Option) *Session {
	return &Session{
		CurrentGame: New(words.New(nil), player, opts...),
	}
}

// NextRoundWith starts a new round over secret.
func (s *Session) NextRoundWith(secret string) error {
	if err := s.CurrentGame.StartWithWord(secret); err != nil {
		return err
	}
	s.Rounds++
	s.recorded = false
	return nil
}

// NextRound starts a new round with a fresh word.
func (s *Session) NextRound() error {
	if err := s.CurrentGame.StartNewGame(); err != nil {
		return err
	}
	s.Rounds++
	s.recorded = false
	return nil
}

// Update records the current round in the history once it is over.
// It reports whether a round was recorded by this call.
func (s *Session) Update() bool {
	if s.recorded {
		return false
	}
	snap, err := s.CurrentGame.Snapshot()
	if err != nil || !snap.GameOver {
		return false
	}

	s.History.Record(snap.Secret, snap.Won, snap.WrongGuesses, snap.Points)
	s.recorded = true
	return true
}

// IsRoundOver reports whether the current round was won or lost.
func (s *Session) IsRoundOver() bool {
	snap, err := s.CurrentGame.Snapshot()
	return err == nil && snap.GameOver
}

func (s *Session) Player() *scoring.PlayerRecord {
	return s.CurrentGame.Player()
}
