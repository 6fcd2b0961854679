package scoring

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// History holds the finished rounds of one play session.
type History struct {
	Entries []RoundEntry
}

// RoundEntry represents a single finished round.
type RoundEntry struct {
	ID           string `json:"id"`
	Word         string `json:"word"`
	Won          bool   `json:"won"`
	WrongGuesses int    `json:"wrong_guesses"`
	Points       int    `json:"points"`
	Timestamp    string `json:"timestamp"`
}

// Record appends a finished round and returns the stored entry.
func (h *History) Record(word string, won bool, wrongGuesses, points int) RoundEntry {
	entry := RoundEntry{
		ID:           uuid.NewString(),
		Word:         word,
		Won:          won,
		WrongGuesses: wrongGuesses,
		Points:       points,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	h.Entries = append(h.Entries, entry)
	return entry
}

// Best returns the highest scoring round, or nil if nothing has been recorded.
// Ties go to the earlier round.
func (h History) Best() *RoundEntry {
	if len(h.Entries) == 0 {
		return nil
	}
	best := h.Entries[0]
	for _, e := range h.Entries[1:] {
		if e.Points > best.Points {
			best = e
		}
	}
	return &best
}

// Top returns the n best rounds, sorted by points.
func (h History) Top(n int) []RoundEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]RoundEntry, len(h.Entries))
	copy(entriesCopy, h.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Points > entriesCopy[j].Points
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}
