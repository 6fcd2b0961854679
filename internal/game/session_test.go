package game

import (
	"errors"
	"testing"

	"go-hangman/internal/scoring"
	"go-hangman/internal/words"
)

func TestSession_Init(t *testing.T) {
	p := scoring.NewPlayerRecord("Tester")
	sess, err := NewSession(words.NewSeeded(1, "go"), p)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if sess.Rounds != 1 {
		t.Errorf("Expected 1 round, got %d", sess.Rounds)
	}
	if sess.Player() != p {
		t.Error("Session should credit the given player")
	}
	if sess.IsRoundOver() {
		t.Error("First round should be in progress")
	}
	if sess.Update() {
		t.Error("Update must not record an unfinished round")
	}
}

func TestSession_EmptyCatalog(t *testing.T) {
	_, err := NewSession(words.NewSeeded(1), nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Expected ErrEmptyCatalog, got %v", err)
	}
}

func TestSession_Progression(t *testing.T) {
	sess, _ := NewSession(words.NewSeeded(1, "ab"), nil)

	// Win round 1 with one miss.
	sess.CurrentGame.MakeGuess("z")
	sess.CurrentGame.MakeGuess("a")
	sess.CurrentGame.MakeGuess("b")
	if !sess.IsRoundOver() {
		t.Fatal("Round 1 should be over")
	}

	if !sess.Update() {
		t.Fatal("Update should record the finished round")
	}
	if sess.Update() {
		t.Error("Update must record a round only once")
	}

	// Lose round 2.
	if err := sess.NextRound(); err != nil {
		t.Fatal(err)
	}
	for _, l := range []string{"c", "d", "e", "f", "g", "h"} {
		sess.CurrentGame.MakeGuess(l)
	}
	sess.Update()

	if sess.Rounds != 2 || len(sess.History.Entries) != 2 {
		t.Fatalf("Expected 2 rounds recorded, got rounds=%d entries=%d", sess.Rounds, len(sess.History.Entries))
	}

	first, second := sess.History.Entries[0], sess.History.Entries[1]
	if !first.Won || first.Points != 50 || first.WrongGuesses != 1 || first.Word != "AB" {
		t.Errorf("Unexpected first entry: %+v", first)
	}
	if second.Won || second.Points != 0 || second.WrongGuesses != 6 {
		t.Errorf("Unexpected second entry: %+v", second)
	}

	if best := sess.History.Best(); best == nil || best.ID != first.ID {
		t.Errorf("Expected first round to be best, got %+v", best)
	}

	stats := sess.Player().Stats()
	if stats.GamesPlayed != 2 || stats.GamesWon != 1 || stats.Score != 50 || stats.WinRate != 50 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestSession_CustomWords(t *testing.T) {
	p := scoring.NewPlayerRecord("Guesser")
	sess := NewCustomSession(p)

	if sess.Rounds != 0 || sess.IsRoundOver() {
		t.Fatalf("custom session must wait for a secret, rounds=%d", sess.Rounds)
	}
	if err := sess.NextRoundWith("42"); !errors.Is(err, ErrUnplayableWord) {
		t.Fatalf("Expected ErrUnplayableWord, got %v", err)
	}
	if sess.Rounds != 0 {
		t.Errorf("rejected secret must not count as a round, rounds=%d", sess.Rounds)
	}

	for round, secret := range []string{"ox", "elk"} {
		if err := sess.NextRoundWith(secret); err != nil {
			t.Fatalf("round %d: %v", round+1, err)
		}
		for _, letter := range []string{"z", "q", "j", "v", "w", "y"} {
			if _, err := sess.CurrentGame.MakeGuess(letter); err != nil {
				break
			}
		}
		if !sess.Update() {
			t.Fatalf("round %d should have been recorded", round+1)
		}
	}

	if sess.Rounds != 2 || len(sess.History.Entries) != 2 {
		t.Fatalf("Expected 2 recorded rounds, got rounds=%d entries=%d", sess.Rounds, len(sess.History.Entries))
	}
	if e := sess.History.Entries[1]; e.Word != "ELK" || e.Won {
		t.Errorf("Unexpected second entry: %+v", e)
	}
	if stats := p.Stats(); stats.GamesPlayed != 2 || stats.GamesWon != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}
