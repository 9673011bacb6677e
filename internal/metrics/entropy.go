package metrics

import (
	"math"

	"shufflelab/internal/deck"
)

// Entropy scores a shuffle by the Shannon entropy of its displacement
// histogram, one bucket per displacement magnitude from 0 to the
// maximum observed, normalized by log2 of the bucket count. No
// displacement at all scores 0.
type Entropy struct {
	name string
}

func NewEntropy() *Entropy {
	return &Entropy{name: "entropy"}
}

func (e *Entropy) Name() string { return e.name }

func (e *Entropy) Score(original, shuffled deck.Deck) float64 {
	dists, ok := displacements(original, shuffled)
	if !ok {
		return 0
	}

	maxDist := 0
	for _, d := range dists {
		if d > maxDist {
			maxDist = d
		}
	}
	if maxDist == 0 {
		return 0
	}

	hist := make([]int, maxDist+1)
	for _, d := range dists {
		hist[d]++
	}

	n := float64(len(dists))
	bits := 0.0
	for _, count := range hist {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		bits -= p * math.Log2(p)
	}

	return math.Round(100 * bits / math.Log2(float64(len(hist))))
}

// Histogram returns the displacement histogram used by the entropy
// score, for display purposes. Nil when the decks cannot be compared.
func Histogram(original, shuffled deck.Deck) []float64 {
	dists, ok := displacements(original, shuffled)
	if !ok {
		return nil
	}
	maxDist := 0
	for _, d := range dists {
		if d > maxDist {
			maxDist = d
		}
	}
	hist := make([]float64, maxDist+1)
	for _, d := range dists {
		hist[d]++
	}
	return hist
}
