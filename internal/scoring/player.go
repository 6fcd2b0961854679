package scoring

import (
	"errors"
	"fmt"
)

// ErrNegativePoints is returned by AddScore when asked to subtract points.
var ErrNegativePoints = errors.New("points must not be negative")

// PlayerRecord accumulates score and win/loss counters for one player across games.
// It is shared by reference; a game credits it once per terminal outcome.
// PlayerRecord does no locking, callers serialize access.
type PlayerRecord struct {
	name        string
	score       int
	gamesPlayed int
	gamesWon    int
}

// Stats is a read-only view of a PlayerRecord.
type Stats struct {
	Name        string  `json:"name"`
	Score       int     `json:"score"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	WinRate     float64 `json:"win_rate"` // percentage, 0 when no games were played
}

// NewPlayerRecord creates a record with zeroed counters.
func NewPlayerRecord(name string) *PlayerRecord {
	return &PlayerRecord{name: name}
}

// Name returns the player's name.
func (p *PlayerRecord) Name() string {
	return p.name
}

// RecordWin counts a won game.
func (p *PlayerRecord) RecordWin() {
	p.gamesWon++
	p.gamesPlayed++
}

// RecordLoss counts a lost game.
func (p *PlayerRecord) RecordLoss() {
	p.gamesPlayed++
}

// AddScore adds points to the cumulative score.
func (p *PlayerRecord) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("add %d to %s: %w", points, p.name, ErrNegativePoints)
	}
	p.score += points
	return nil
}

// Stats returns the current counters and the win rate.
func (p *PlayerRecord) Stats() Stats {
	var winRate float64
	if p.gamesPlayed > 0 {
		winRate = float64(p.gamesWon) * 100 / float64(p.gamesPlayed)
	}
	return Stats{
		Name:        p.name,
		Score:       p.score,
		GamesPlayed: p.gamesPlayed,
		GamesWon:    p.gamesWon,
		WinRate:     winRate,
	}
}
