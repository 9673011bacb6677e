// Package metrics scores how well a permutation mixed the original
// order. Scores are advisory: malformed input degrades to 0 rather
// than failing.
package metrics

import (
	"math"

	"shufflelab/internal/deck"
)

// Scorer rates a shuffled deck against its original ordering on a
// 0-100 scale.
type Scorer interface {
	Name() string
	Score(original, shuffled deck.Deck) float64
}

// DefaultScorers returns the scorers used for the combined estimate.
func DefaultScorers() []Scorer {
	return []Scorer{NewDisplacement(), NewEntropy()}
}

// Estimate returns the combined randomness estimate, the rounded mean
// of all default scorers, clamped to [0,100].
func Estimate(original, shuffled deck.Deck) int {
	scorers := DefaultScorers()
	total := 0.0
	for _, s := range scorers {
		total += s.Score(original, shuffled)
	}
	v := int(math.Round(total / float64(len(scorers))))
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return v
}

// displacements returns |new index - original index| per card, matched
// by id. ok is false when the decks cannot be compared: mismatched
// lengths or an id in shuffled that the original never had.
func displacements(original, shuffled deck.Deck) ([]int, bool) {
	if len(original) == 0 || len(original) != len(shuffled) {
		return nil, false
	}
	origIdx := original.IndexByID()
	d := make([]int, len(shuffled))
	for i, c := range shuffled {
		j, ok := origIdx[c.ID]
		if !ok {
			return nil, false
		}
		diff := i - j
		if diff < 0 {
			diff = -diff
		}
		d[i] = diff
	}
	return d, true
}
