package scoring

import (
	"sort"

	"github.com/samber/lo"
)

// Leaderboard ranks players by score. It reads the records it is given and
// never mutates them.
type Leaderboard struct {
	players []*PlayerRecord
}

// NewLeaderboard creates a leaderboard over the given players.
func NewLeaderboard(players ...*PlayerRecord) *Leaderboard {
	l := &Leaderboard{}
	for _, p := range players {
		l.Add(p)
	}
	return l
}

// Add registers a player. Nil records are ignored.
func (l *Leaderboard) Add(p *PlayerRecord) {
	if p == nil {
		return
	}
	l.players = append(l.players, p)
}

// Top returns the stats of the n best players: highest score first, then most
// wins, then name.
func (l *Leaderboard) Top(n int) []Stats {
	stats := lo.Map(l.players, func(p *PlayerRecord, _ int) Stats {
		return p.Stats()
	})

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Score != stats[j].Score {
			return stats[i].Score > stats[j].Score
		}
		if stats[i].GamesWon != stats[j].GamesWon {
			return stats[i].GamesWon > stats[j].GamesWon
		}
		return stats[i].Name < stats[j].Name
	})

	if len(stats) < n {
		return stats
	}
	return stats[:n]
}
