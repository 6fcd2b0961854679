package state

import (
	"strings"
	"testing"
)

func TestClassify_Invalid(t *testing.T) {
	m := NewMaskedWord("GO")
	inputs := []string{"", "ab", "1", " ", "?", "é", "GO"}

	for _, in := range inputs {
		v := Classify(in, m)
		if v.Kind != Invalid {
			t.Errorf("Classify(%q): expected Invalid, got %v", in, v.Kind)
		}
		if v.Message == "" {
			t.Errorf("Classify(%q): expected a message", in)
		}
	}

	if len(m.Guessed()) != 0 {
		t.Errorf("Classify must not mutate the word, guessed=%v", m.Guessed())
	}
}

func TestClassify_Pending(t *testing.T) {
	m := NewMaskedWord("GO")

	v := Classify("g", m)
	if v.Kind != Pending {
		t.Fatalf("Expected Pending, got %v", v.Kind)
	}
	if v.Letter != 'G' {
		t.Errorf("Expected letter 'G', got %q", v.Letter)
	}
	if m.HasGuessed('G') {
		t.Error("Classify must not record the guess")
	}
}

func TestClassify_AlreadyGuessed(t *testing.T) {
	m := NewMaskedWord("GO")
	m.Reveal('x')

	v := Classify("X", m)
	if v.Kind != AlreadyGuessed {
		t.Fatalf("Expected AlreadyGuessed, got %v", v.Kind)
	}
	if !strings.Contains(v.Message, "'X'") {
		t.Errorf("Message should name the letter, got %q", v.Message)
	}

	v = Classify("x", m)
	if v.Kind != AlreadyGuessed {
		t.Errorf("lowercase repeat: expected AlreadyGuessed, got %v", v.Kind)
	}
}
