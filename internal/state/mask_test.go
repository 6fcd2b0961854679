package state

import (
	"strings"
	"testing"
)

func TestMaskedWord_New(t *testing.T) {
	m := NewMaskedWord("golang")

	if m.Secret() != "GOLANG" {
		t.Errorf("Expected secret 'GOLANG', got %q", m.Secret())
	}
	if len(m.letters) != 5 {
		t.Errorf("Expected 5 distinct letters, got %d", len(m.letters))
	}
	if len(m.Guessed()) != 0 {
		t.Errorf("Expected no guessed letters, got %v", m.Guessed())
	}
	if m.Render() != "_ _ _ _ _ _" {
		t.Errorf("Expected all hidden, got %q", m.Render())
	}
}

func TestMaskedWord_Render(t *testing.T) {
	m := NewMaskedWord("CAT")
	m.Reveal('C')
	m.Reveal('T')

	if m.Render() != "C _ T" {
		t.Errorf("Expected 'C _ T', got %q", m.Render())
	}
}

func TestMaskedWord_RevealIsCaseInsensitive(t *testing.T) {
	m := NewMaskedWord("Go")

	if !m.Reveal('g') {
		t.Error("'g' should be found in 'GO'")
	}
	if !m.HasGuessed('G') {
		t.Error("'G' should be recorded as guessed")
	}
	if m.Render() != "G _" {
		t.Errorf("Expected 'G _', got %q", m.Render())
	}
}

func TestMaskedWord_RevealRecordsMissesAndRepeats(t *testing.T) {
	m := NewMaskedWord("GO")

	if m.Reveal('z') {
		t.Error("'Z' should not be found")
	}
	if !m.HasGuessed('Z') {
		t.Error("a miss should still be recorded")
	}

	m.Reveal('o')
	m.Reveal('O')
	guessed := m.Guessed()
	if strings.Join(guessed, ",") != "O,Z" {
		t.Errorf("Expected guessed [O Z], got %v", guessed)
	}
}

func TestMaskedWord_SolvedRegardlessOfOrder(t *testing.T) {
	orders := [][]rune{
		[]rune("BANA"),
		[]rune("NAB"),
		[]rune("ANB"),
		[]rune("XBYAZN"),
	}

	for _, order := range orders {
		m := NewMaskedWord("banana")
		distinct := map[rune]bool{'B': false, 'A': false, 'N': false}

		for _, r := range order {
			m.Reveal(r)
			if _, ok := distinct[r]; ok {
				distinct[r] = true
			}

			all := true
			for _, seen := range distinct {
				all = all && seen
			}
			if m.IsSolved() != all {
				t.Fatalf("order %q: after %c IsSolved=%v, want %v", string(order), r, m.IsSolved(), all)
			}
		}

		if !m.IsSolved() {
			t.Errorf("order %q: expected solved", string(order))
		}
		if m.Render() != "B A N A N A" {
			t.Errorf("order %q: expected full render, got %q", string(order), m.Render())
		}
	}
}

func TestMaskedWord_NonLettersAreNotPreRevealed(t *testing.T) {
	m := NewMaskedWord("e-mail")

	if m.Render() != "_ _ _ _ _ _" {
		t.Errorf("Expected hyphen hidden, got %q", m.Render())
	}

	for _, r := range "EMAIL" {
		m.Reveal(r)
	}
	if m.IsSolved() {
		t.Error("word with an unguessed hyphen should not be solved")
	}
	if m.Render() != "E _ M A I L" {
		t.Errorf("Expected 'E _ M A I L', got %q", m.Render())
	}
}
