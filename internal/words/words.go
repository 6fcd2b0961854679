package words

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrEmptyCatalog is returned when a word is requested from an empty catalog.
var ErrEmptyCatalog = errors.New("word catalog is empty")

// ErrUnplayableWord is returned for a secret that cannot be fully revealed by guessing letters.
var ErrUnplayableWord = errors.New("word must contain only the letters A-Z")

// Rand is the randomness a Source draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Source owns an ordered catalog of candidate secret words.
// Entries keep the case they were added with; SelectRandom uppercases on read.
type Source struct {
	words []string
	rng   Rand
}

// New creates a Source over the given words. A nil rng selects a time-seeded generator.
func New(rng Rand, words ...string) *Source {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	s := &Source{rng: rng}
	s.AddWords(words)
	return s
}

// NewSeeded creates a Source whose selections are reproducible for a given seed.
func NewSeeded(seed uint64, words ...string) *Source {
	return New(rand.New(rand.NewPCG(seed, seed)), words...)
}

// AddWords appends words to the catalog as given. Duplicates are kept.
func (s *Source) AddWords(words []string) {
	s.words = append(s.words, words...)
}

// SelectRandom returns one catalog entry, uppercased, chosen uniformly at random.
func (s *Source) SelectRandom() (string, error) {
	if len(s.words) == 0 {
		return "", ErrEmptyCatalog
	}
	return strings.ToUpper(s.words[s.rng.IntN(len(s.words))]), nil
}

// Len reports the number of catalog entries.
func (s *Source) Len() int {
	return len(s.words)
}

// Words returns a copy of the catalog in insertion order.
func (s *Source) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// IsPlayable reports whether w is non-empty and made only of ASCII letters,
// so that every character of it can be revealed by a guess.
func IsPlayable(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		b := w[i]
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}

// Default returns the built-in word bank.
func Default() []string {
	return []string{
		"python",
		"javascript",
		"programming",
		"developer",
		"algorithm",
		"function",
		"variable",
		"database",
		"interface",
		"framework",
		"computer",
		"software",
		"hardware",
		"network",
		"security",
		"encryption",
		"debugging",
		"repository",
		"deployment",
		"terminal",
		"abstract",
		"inheritance",
		"polymorphism",
		"encapsulation",
		"recursion",
		"iteration",
		"compilation",
		"exception",
		"middleware",
	}
}
