package metrics

import (
	"math"

	"shufflelab/internal/deck"
)

// Displacement scores a shuffle by how far cards travelled: a weighted
// blend of the fraction of cards that moved at all (60%) and the mean
// displacement normalized against half the deck size (40%).
type Displacement struct {
	name string
}

func NewDisplacement() *Displacement {
	return &Displacement{name: "displacement"}
}

func (d *Displacement) Name() string { return d.name }

func (d *Displacement) Score(original, shuffled deck.Deck) float64 {
	dists, ok := displacements(original, shuffled)
	if !ok {
		return 0
	}

	n := len(dists)
	moved := 0
	sum := 0
	for _, dist := range dists {
		if dist != 0 {
			moved++
		}
		sum += dist
	}

	displacedFraction := float64(moved) / float64(n)
	meanDisplacement := float64(sum) / float64(n)
	normalizedMean := math.Min(meanDisplacement/(float64(n)/2), 1)

	return math.Round(100 * (0.6*displacedFraction + 0.4*normalizedMean))
}
