package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go-hangman/internal/config"
	"go-hangman/internal/game"
	"go-hangman/internal/scoring"
	"go-hangman/internal/state"
	"go-hangman/internal/words"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red for misses and losses
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green for hits and wins
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Color for the score
	wordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 2).
	Border(lipgloss.ThickBorder())

type phase int

const (
	phaseName phase = iota
	phaseSecret
	phasePlaying
	phaseRoundOver
	phaseDone
)

type LocalState struct {
	Source  *words.Source
	Options []game.Option
	Session *game.Session

	// Custom switches to two players: one types each secret, the other guesses it.
	Custom bool

	input      textinput.Model
	phase      phase
	message    string
	lastKind   state.OutcomeKind
	defaultTag string
	err        error
}

func initialModel(source *words.Source, playerName string, opts ...game.Option) *LocalState {
	ti := textinput.New()
	ti.Placeholder = playerName
	ti.CharLimit = 32
	ti.Width = 32
	ti.Focus()

	return &LocalState{
		Source:     source,
		Options:    opts,
		input:      ti,
		phase:      phaseName,
		defaultTag: playerName,
	}
}

func (s *LocalState) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			s.phase = phaseDone
			return s, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(s.input.Value())
			s.input.SetValue("")
			return s, s.submit(value)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit handles one line of input for the current phase.
func (s *LocalState) submit(value string) tea.Cmd {
	switch s.phase {
	case phaseName:
		name := value
		if name == "" {
			name = s.defaultTag
		}
		if s.Custom {
			s.Session = game.NewCustomSession(scoring.NewPlayerRecord(name), s.Options...)
			s.askSecret()
			return nil
		}
		sess, err := game.NewSession(s.Source, scoring.NewPlayerRecord(name), s.Options...)
		if err != nil {
			s.err = err
			s.phase = phaseDone
			return tea.Quit
		}
		s.Session = sess
		s.phase = phasePlaying
		s.input.Placeholder = "letter"
		s.input.CharLimit = 8
	case phaseSecret:
		err := s.Session.NextRoundWith(value)
		if errors.Is(err, game.ErrUnplayableWord) {
			s.message = "Please enter a word made of letters only."
			s.lastKind = state.OutcomeInvalid
			return nil
		}
		if err != nil {
			s.err = err
			s.phase = phaseDone
			return tea.Quit
		}
		s.message = ""
		s.phase = phasePlaying
		s.input.EchoMode = textinput.EchoNormal
		s.input.Placeholder = "letter"
		s.input.CharLimit = 8
	case phasePlaying:
		if strings.EqualFold(value, "quit") {
			s.phase = phaseDone
			return tea.Quit
		}
		out, err := s.Session.CurrentGame.MakeGuess(value)
		if err != nil {
			s.err = err
			s.phase = phaseDone
			return tea.Quit
		}
		s.message = out.Message
		s.lastKind = out.Kind
		if out.Terminal() {
			s.Session.Update()
			s.phase = phaseRoundOver
			s.input.Placeholder = "yes/no"
		}
	case phaseRoundOver:
		if !lo.Contains([]string{"y", "yes"}, strings.ToLower(value)) {
			s.phase = phaseDone
			return tea.Quit
		}
		if s.Custom {
			s.askSecret()
			return nil
		}
		if err := s.Session.NextRound(); err != nil {
			s.err = err
			s.phase = phaseDone
			return tea.Quit
		}
		s.message = ""
		s.phase = phasePlaying
		s.input.Placeholder = "letter"
	}
	return nil
}

// askSecret hides the input while the other player types the next word.
func (s *LocalState) askSecret() {
	s.message = ""
	s.phase = phaseSecret
	s.input.EchoMode = textinput.EchoPassword
	s.input.Placeholder = "secret word"
	s.input.CharLimit = 32
}

func (s *LocalState) renderMessage() string {
	if s.message == "" {
		return ""
	}
	line := ">>> " + s.message
	switch s.lastKind {
	case state.OutcomeHit, state.OutcomeWon:
		return greenStyle.Render(line)
	case state.OutcomeMiss, state.OutcomeLost:
		return redStyle.Render(line)
	}
	return scoreStyle.Render(line)
}

func renderStats(stats scoring.Stats) string {
	line := fmt.Sprintf("Player: %s | Score: %d | Games: %d | Wins: %d",
		stats.Name, stats.Score, stats.GamesPlayed, stats.GamesWon)
	if stats.GamesPlayed > 0 {
		line += fmt.Sprintf(" | Win Rate: %.1f%%", stats.WinRate)
	}
	return scoreStyle.Render(line)
}

func renderBoard(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(gallowsStage(snap.Stage))
	b.WriteString("\n\nWord: " + wordStyle.Render(snap.Display))
	b.WriteString(fmt.Sprintf("\n\nWrong guesses: %d/%d", snap.WrongGuesses, snap.MaxWrongGuesses))
	if len(snap.Guessed) > 0 {
		b.WriteString("\nGuessed letters: " + strings.Join(snap.Guessed, ", "))
	} else {
		b.WriteString("\nGuessed letters: None yet")
	}
	return b.String()
}

func rules() string {
	return strings.Join([]string{
		"RULES:",
		"  • Guess letters to reveal the hidden word",
		fmt.Sprintf("  • You have %d wrong guesses before game over", state.MaxWrongGuesses),
		fmt.Sprintf("  • Scoring: (%d - wrong_guesses) × %d points", state.MaxWrongGuesses, scoring.PointsPerRemainingGuess),
		"  • Enter 'quit' anytime to exit",
	}, "\n")
}

func (s *LocalState) View() string {
	header := bannerStyle.Render("HANGMAN")

	switch s.phase {
	case phaseName:
		return header + "\n\n" + rules() + "\n\nEnter your name:\n" + s.input.View() + "\n"
	case phaseSecret:
		display := header + "\n" + renderStats(s.Session.Player().Stats())
		if msg := s.renderMessage(); msg != "" {
			display += "\n\n" + msg
		}
		return display + fmt.Sprintf("\n\nEnter a word for %s to guess:\n", s.Session.Player().Name()) + s.input.View() + "\n"
	case phaseDone:
		return s.finalView()
	}

	snap, err := s.Session.CurrentGame.Snapshot()
	if err != nil {
		return redStyle.Render(err.Error()) + "\n"
	}

	display := header + "\n" + renderStats(s.Session.Player().Stats()) + "\n" + renderBoard(snap)
	if msg := s.renderMessage(); msg != "" {
		display += "\n\n" + msg
	}

	if s.phase == phaseRoundOver {
		if snap.Won {
			display += "\n" + greenStyle.Render("VICTORY!")
		} else {
			display += "\n" + redStyle.Render(fmt.Sprintf("The word was %s.", snap.Secret))
		}
		display += "\n\nPlay again? (yes/no)\n" + s.input.View() + "\n"
		return display
	}

	return display + "\n\nEnter a letter (or 'quit' to exit):\n" + s.input.View() + "\n"
}

func (s *LocalState) finalView() string {
	if s.err != nil {
		return redStyle.Render("Error: "+s.err.Error()) + "\n"
	}
	if s.Session == nil {
		return "\nGoodbye!\n"
	}

	display := "\n" + boldStyle.Render("THANKS FOR PLAYING!") + "\n" + renderStats(s.Session.Player().Stats())
	if best := s.Session.History.Best(); best != nil && best.Won {
		display += "\n" + greenStyle.Render(fmt.Sprintf("Best round: %s for %d points", best.Word, best.Points))
	}
	return display + "\n\nGoodbye!\n"
}

// runDemo plays rounds for a few bot players and prints a leaderboard.
func runDemo(source *words.Source, rounds int, opts ...game.Option) error {
	if rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", rounds)
	}
	board := scoring.NewLeaderboard()

	for _, name := range []string{"Bob", "Carol", "Dave"} {
		player := scoring.NewPlayerRecord(name)
		board.Add(player)

		sess, err := game.NewSession(source, player, opts...)
		if err != nil {
			return err
		}
		for round := 1; round <= rounds; round++ {
			if round > 1 {
				if err := sess.NextRound(); err != nil {
					return err
				}
			}
			if _, err := game.Autoplay(sess.CurrentGame); err != nil {
				return err
			}
			sess.Update()

			snap, _ := sess.CurrentGame.Snapshot()
			result := redStyle.Render("lost")
			if snap.Won {
				result = greenStyle.Render(fmt.Sprintf("won +%d", snap.Points))
			}
			fmt.Printf("%-6s round %d: %-14s %s\n", name, round, snap.Secret, result)
		}
	}

	fmt.Println("\n" + boldStyle.Render("Tournament Results:"))
	fmt.Printf("%-10s %-10s %-8s %s\n", "Player", "Score", "Wins", "Win Rate")
	fmt.Println(strings.Repeat("-", 45))
	for _, stats := range board.Top(10) {
		fmt.Printf("%-10s %-10d %-8d %.1f%%\n", stats.Name, stats.Score, stats.GamesWon, stats.WinRate)
	}
	return nil
}

func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		file.Close()
		return zerolog.Nop(), nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, func() { file.Close() }, nil
}

func buildSource(cfg config.Config, logger zerolog.Logger) (*words.Source, error) {
	var source *words.Source
	if cfg.Seed != 0 {
		source = words.NewSeeded(cfg.Seed, words.Default()...)
	} else {
		source = words.New(nil, words.Default()...)
	}

	if len(cfg.WordFiles) == 0 {
		return source, nil
	}

	loaded, err := words.LoadWords(cfg.WordFiles)
	if err != nil {
		return nil, err
	}
	playable, skipped := lo.FilterReject(loaded, func(w string, _ int) bool {
		return words.IsPlayable(w)
	})
	if len(skipped) > 0 {
		logger.Warn().Strs("skipped", skipped).Msg("ignoring words with non-letter characters")
	}
	source.AddWords(playable)
	logger.Info().Int("added", len(playable)).Int("catalog", source.Len()).Msg("word lists loaded")
	return source, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	var (
		wordsFlag string
		demo      bool
		custom    bool
		rounds    int
	)

	flag.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "Default player name")
	flag.StringVar(&cfg.PlayerName, "n", cfg.PlayerName, "Default player name (shorthand)")

	flag.StringVar(&wordsFlag, "words", strings.Join(cfg.WordFiles, ","), "Comma-separated word list files or directories")
	flag.StringVar(&wordsFlag, "w", strings.Join(cfg.WordFiles, ","), "Word list files or directories (shorthand)")

	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for word selection (0 = random)")

	flag.BoolVar(&demo, "demo", false, "Play an automated tournament and print the results")
	flag.IntVar(&rounds, "rounds", 3, "Rounds per player in demo mode")
	flag.BoolVar(&custom, "custom", false, "Two players: one enters the secret word, the other guesses")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -n, --name=NAME       Default player name\n")
		fmt.Fprintf(os.Stderr, "   -w, --words=PATHS     Comma-separated word list files or directories\n")
		fmt.Fprintf(os.Stderr, "       --seed=N          Seed for word selection (0 = random)\n")
		fmt.Fprintf(os.Stderr, "       --demo            Play an automated tournament\n")
		fmt.Fprintf(os.Stderr, "       --rounds=N        Rounds per player in demo mode\n")
		fmt.Fprintf(os.Stderr, "       --custom          Two players: one enters the word, the other guesses\n")
		fmt.Fprintf(os.Stderr, "   -h, --help            Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment: HANGMAN_PLAYER, HANGMAN_WORDS, HANGMAN_SEED, HANGMAN_LOG_FILE, HANGMAN_LOG_LEVEL\n")
	}

	flag.Parse()

	cfg.WordFiles = lo.Compact(strings.Split(wordsFlag, ","))

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	source, err := buildSource(cfg, logger)
	if err != nil {
		fmt.Printf("Error loading words: %v\n", err)
		os.Exit(1)
	}

	if demo {
		if rounds < 1 {
			fmt.Printf("Error: -rounds must be at least 1, got %d\n", rounds)
			os.Exit(1)
		}
		if err := runDemo(source, rounds, game.WithLogger(logger)); err != nil {
			fmt.Printf("Error running demo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := initialModel(source, cfg.PlayerName, game.WithLogger(logger))
	model.Custom = custom

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}
	if model.err != nil {
		os.Exit(1)
	}
}
