package game

// Snapshot is an immutable view of a round for rendering.
// Guessed is a private copy, sorted alphabetically.
type Snapshot struct {
	Display         string
	WrongGuesses    int
	MaxWrongGuesses int
	Remaining       int
	Guessed         []string
	Stage           int // gallows picture, 0..MaxWrongGuesses
	GameOver        bool
	Won             bool
	Points          int    // awarded this round, set on a win
	Secret          string // empty until the round is over
}
