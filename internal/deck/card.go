package deck

import "fmt"

type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits in canonical (suit-major) deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is a single deck entry. ID is the sole identity key across
// permutations; Position is derived from the current index and
// Highlighted marks cards touched by the most recent step.
type Card struct {
	ID          string `json:"id"`
	Suit        Suit   `json:"suit"`
	Rank        Rank   `json:"rank"`
	Position    int    `json:"position"`
	Highlighted bool   `json:"highlighted"`
}

// String returns the compact form used as the card ID, e.g. "AS" or "10H".
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit)
}

// Label returns the display form with a suit symbol, e.g. "A♠".
func (c Card) Label() string {
	return c.Rank.String() + c.Suit.Symbol()
}
