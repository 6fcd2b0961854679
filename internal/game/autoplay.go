package game

import (
	"slices"
)

// FrequencyOrder lists English letters from most to least common.
const FrequencyOrder = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// NextFrequencyGuess returns the most common letter not yet guessed.
func NextFrequencyGuess(snap Snapshot) (string, bool) {
	for _, r := range FrequencyOrder {
		letter := string(r)
		if !slices.Contains(snap.Guessed, letter) {
			return letter, true
		}
	}
	return "", false
}

// Autoplay guesses letters in frequency order until the round ends.
// The round must already be started.
func Autoplay(g *Game) ([]Outcome, error) {
	var outcomes []Outcome
	for {
		snap, err := g.Snapshot()
		if err != nil {
			return outcomes, err
		}
		if snap.GameOver {
			return outcomes, nil
		}

		letter, ok := NextFrequencyGuess(snap)
		if !ok {
			// Only reachable for secrets with characters no letter can reveal.
			return outcomes, nil
		}
		out, err := g.MakeGuess(letter)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}
}
