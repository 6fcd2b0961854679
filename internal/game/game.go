package game

import (
	"fmt"
	"strings"

	"go-hangman/internal/scoring"
	"go-hangman/internal/state"
	"go-hangman/internal/words"

	"github.com/rs/zerolog"
)

var (
	ErrNotStarted      = state.ErrNotStarted
	ErrGameAlreadyOver = state.ErrGameAlreadyOver
	ErrEmptyCatalog    = words.ErrEmptyCatalog
	ErrUnplayableWord  = words.ErrUnplayableWord
)

type Outcome = state.Outcome

// Game is one player's hangman game. Each StartNewGame draws a fresh word and
// replaces the previous round. Game is not safe for concurrent use.
type Game struct {
	words  *words.Source
	state  *state.State
	logger zerolog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game drawing words from source and crediting player.
// A nil player gets a fresh record named "Player".
func New(source *words.Source, player *scoring.PlayerRecord, opts ...Option) *Game {
	if player == nil {
		player = scoring.NewPlayerRecord("Player")
	}
	g := &Game{
		words:  source,
		state:  state.NewState(player),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Player returns the record this game credits.
func (g *Game) Player() *scoring.PlayerRecord {
	return g.state.Player
}

// StartNewGame draws a word and begins a new round.
func (g *Game) StartNewGame() error {
	secret, err := g.words.SelectRandom()
	if err != nil {
		return fmt.Errorf("start new game: %w", err)
	}
	return g.begin(secret, "catalog")
}

// StartWithWord begins a new round over a secret chosen by another player.
// The word must be made of ASCII letters only.
func (g *Game) StartWithWord(secret string) error {
	secret = strings.TrimSpace(secret)
	if !words.IsPlayable(secret) {
		return fmt.Errorf("start with word: %w", ErrUnplayableWord)
	}
	return g.begin(strings.ToUpper(secret), "custom")
}

func (g *Game) begin(secret, origin string) error {
	if err := g.state.Start(secret); err != nil {
		return err
	}

	g.logger.Info().
		Int("length", len(secret)).
		Str("player", g.state.Player.Name()).
		Str("origin", origin).
		Msg("round started")
	g.logger.Debug().Str("secret", secret).Msg("secret drawn")
	return nil
}

// MakeGuess applies one raw guess. Malformed and repeated guesses are reported
// through Outcome.Kind; errors mean the round is not playable.
func (g *Game) MakeGuess(raw string) (Outcome, error) {
	out, err := g.state.Guess(raw)
	if err != nil {
		g.logger.Warn().Err(err).Str("guess", raw).Msg("guess rejected")
		return out, err
	}

	g.logger.Debug().
		Str("letter", string(out.Letter)).
		Stringer("kind", out.Kind).
		Int("wrong", g.state.WrongGuesses).
		Msg("guess applied")

	if out.Terminal() {
		g.logger.Info().
			Bool("won", out.Kind == state.OutcomeWon).
			Int("points", out.Points).
			Int("wrong", g.state.WrongGuesses).
			Str("secret", g.state.Word.Secret()).
			Msg("round over")
	}
	return out, nil
}

// Snapshot returns a read-only view of the current round.
func (g *Game) Snapshot() (Snapshot, error) {
	if !g.state.Started() {
		return Snapshot{}, ErrNotStarted
	}

	s := g.state
	snap := Snapshot{
		Display:         s.Word.Render(),
		WrongGuesses:    s.WrongGuesses,
		MaxWrongGuesses: state.MaxWrongGuesses,
		Remaining:       state.MaxWrongGuesses - s.WrongGuesses,
		Guessed:         s.Word.Guessed(),
		Stage:           s.Stage(),
		GameOver:        s.GameOver(),
		Won:             s.Won(),
		Points:          s.Points,
	}
	if snap.GameOver {
		snap.Secret = s.Word.Secret()
	}
	return snap, nil
}
