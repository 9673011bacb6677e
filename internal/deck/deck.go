// Package deck models the ordered card collection that the shuffle
// engine permutes. Decks are treated as immutable by callers: every
// operation returns a fresh copy.
package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed caller input (empty deck,
	// non-positive size, unknown algorithm name).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvariantViolation marks corrupted state (duplicate ids,
	// out-of-range step indices).
	ErrInvariantViolation = errors.New("invariant violation")
)

const StandardSize = 52

type Deck []Card

// NewStandard returns the canonical 52-card deck in suit-major,
// rank-minor order.
func NewStandard() Deck {
	d, _ := New(StandardSize)
	return d
}

// New returns an ordered deck of n cards following the canonical
// suit-major order, cycling with a numbered suffix past 52 so ids
// stay unique for any positive n.
func New(n int) (Deck, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: deck size must be positive, got %d", ErrInvalidInput, n)
	}

	d := make(Deck, 0, n)
	for i := 0; i < n; i++ {
		suit := Suits[(i/13)%len(Suits)]
		rank := Rank(i%13 + 1)
		c := Card{Suit: suit, Rank: rank, Position: i}
		c.ID = c.String()
		if cycle := i / StandardSize; cycle > 0 {
			c.ID = fmt.Sprintf("%s-%d", c.ID, cycle+1)
		}
		d = append(d, c)
	}
	return d, nil
}

func (d Deck) Clone() Deck {
	c := make(Deck, len(d))
	copy(c, d)
	return c
}

// ResetPositions returns a copy with every Position renumbered to the
// card's current index.
func (d Deck) ResetPositions() Deck {
	c := d.Clone()
	for i := range c {
		c[i].Position = i
	}
	return c
}

// ClearHighlights returns a copy with all highlight flags cleared.
func (d Deck) ClearHighlights() Deck {
	c := d.Clone()
	for i := range c {
		c[i].Highlighted = false
	}
	return c
}

// Validate checks the duplicate-id invariant.
func (d Deck) Validate() error {
	seen := make(map[string]int, len(d))
	for i, c := range d {
		if j, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: duplicate card id %q at indices %d and %d", ErrInvariantViolation, c.ID, j, i)
		}
		seen[c.ID] = i
	}
	return nil
}

func (d Deck) IDs() []string {
	ids := make([]string, len(d))
	for i, c := range d {
		ids[i] = c.ID
	}
	return ids
}

// IndexByID maps each card id to its index.
func (d Deck) IndexByID() map[string]int {
	m := make(map[string]int, len(d))
	for i, c := range d {
		m[c.ID] = i
	}
	return m
}
