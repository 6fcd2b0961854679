package state

import (
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// MaskedWord tracks which characters of a secret word have been revealed.
// The guessed set only grows.
type MaskedWord struct {
	secret  []rune
	letters map[rune]struct{}
	guessed map[rune]struct{}
}

// NewMaskedWord uppercases the secret and computes its distinct characters.
func NewMaskedWord(secret string) *MaskedWord {
	runes := []rune(strings.ToUpper(secret))
	return &MaskedWord{
		secret:  runes,
		letters: lo.Keyify(runes),
		guessed: map[rune]struct{}{},
	}
}

// Reveal records the letter as guessed and reports whether the secret contains it.
// Repeats and misses are recorded too.
func (m *MaskedWord) Reveal(letter rune) bool {
	letter = unicode.ToUpper(letter)
	m.guessed[letter] = struct{}{}
	_, ok := m.letters[letter]
	return ok
}

// HasGuessed reports whether the letter was already guessed, ignoring case.
func (m *MaskedWord) HasGuessed(letter rune) bool {
	_, ok := m.guessed[unicode.ToUpper(letter)]
	return ok
}

// IsSolved reports whether every distinct character of the secret was guessed.
func (m *MaskedWord) IsSolved() bool {
	for r := range m.letters {
		if _, ok := m.guessed[r]; !ok {
			return false
		}
	}
	return true
}

// Render shows guessed characters and '_' for the rest, separated by spaces.
func (m *MaskedWord) Render() string {
	cells := lo.Map(m.secret, func(r rune, _ int) string {
		if _, ok := m.guessed[r]; ok {
			return string(r)
		}
		return "_"
	})
	return strings.Join(cells, " ")
}

// Secret returns the uppercased secret.
func (m *MaskedWord) Secret() string {
	return string(m.secret)
}

// Guessed returns the guessed letters in alphabetical order.
func (m *MaskedWord) Guessed() []string {
	guessed := lo.Map(lo.Keys(m.guessed), func(r rune, _ int) string {
		return string(r)
	})
	slices.Sort(guessed)
	return guessed
}
