package shuffle

import (
	"fmt"

	"shufflelab/internal/deck"
)

// NewOverhand returns the overhand shuffle: repeatedly pull a small
// group (1 to 7 cards) off the top of the working pile and drop it on
// top of the result, so the most recently pulled group ends up nearest
// the new top. A deliberately weak mixer; full mixing takes O(n²)
// draws in the worst case.
func NewOverhand() Algorithm {
	return &algorithm{
		desc: Descriptor{
			Name:        "overhand",
			Description: "pull small groups off the top onto a new pile",
			Complexity:  "O(n), weak mixing",
		},
		run: runOverhand,
	}
}

const overhandMaxGroup = 7

func runOverhand(d deck.Deck, src Source, em emitter) deck.Deck {
	n := len(d)
	rem := d.Clone()
	out := make(deck.Deck, 0, n)

	for len(rem) > 0 {
		max := overhandMaxGroup
		if len(rem) < max {
			max = len(rem)
		}
		g := src.Intn(max) + 1

		// Replay layout: working pile occupies the prefix, the
		// accumulated result the suffix. The group leaves the top of
		// the working pile and lands just before the result boundary.
		b := len(rem)
		em.move(indexRange(0, g), indexRange(b-g, b),
			fmt.Sprintf("move a group of %d cards from the top onto the new pile", g))

		out = append(rem[:g].Clone(), out...)
		rem = rem[g:]
	}
	return finish(out)
}
