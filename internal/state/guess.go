package state

import "fmt"

// VerdictKind classifies a raw guess before it touches game state.
type VerdictKind int

const (
	// Invalid input is not a single ASCII letter.
	Invalid VerdictKind = iota
	// AlreadyGuessed input names a letter guessed earlier in the round.
	AlreadyGuessed
	// Pending input is a fresh letter, ready to be applied.
	Pending
)

func (k VerdictKind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case AlreadyGuessed:
		return "already_guessed"
	case Pending:
		return "pending"
	}
	return fmt.Sprintf("VerdictKind(%d)", int(k))
}

// Verdict is the result of Classify. Letter is uppercased and set unless Kind is Invalid.
type Verdict struct {
	Kind    VerdictKind
	Letter  rune
	Message string
}

// Classify validates raw against the letters already guessed in word.
// It never mutates word.
func Classify(raw string, word *MaskedWord) Verdict {
	if len(raw) != 1 || !isASCIILetter(raw[0]) {
		return Verdict{Kind: Invalid, Message: "Please enter a single letter."}
	}

	letter := rune(raw[0])
	if letter >= 'a' {
		letter -= 'a' - 'A'
	}

	if word != nil && word.HasGuessed(letter) {
		return Verdict{
			Kind:    AlreadyGuessed,
			Letter:  letter,
			Message: fmt.Sprintf("You already guessed '%c'. Try a different letter.", letter),
		}
	}

	return Verdict{Kind: Pending, Letter: letter}
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
