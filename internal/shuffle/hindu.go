package shuffle

import (
	"fmt"

	"shufflelab/internal/deck"
)

// NewHindu returns the hindu shuffle, the mirror of overhand: packets
// of 1 to 6 cards leave the bottom of the working pile and are
// appended behind the result, keeping each packet's internal order.
func NewHindu() Algorithm {
	return &algorithm{
		desc: Descriptor{
			Name:        "hindu",
			Description: "draw packets from the bottom and stack them behind the result",
			Complexity:  "O(n), weak mixing",
		},
		run: runHindu,
	}
}

const hinduMaxPacket = 6

func runHindu(d deck.Deck, src Source, em emitter) deck.Deck {
	n := len(d)
	rem := d.Clone()
	out := make(deck.Deck, 0, n)

	for len(rem) > 0 {
		max := hinduMaxPacket
		if len(rem) < max {
			max = len(rem)
		}
		g := src.Intn(max) + 1

		// Replay layout: working pile prefix, result suffix. The packet
		// leaves the bottom of the working pile and lands at the very
		// end, behind everything accumulated so far.
		b := len(rem)
		em.move(indexRange(b-g, b), indexRange(n-g, n),
			fmt.Sprintf("draw a packet of %d cards from the bottom behind the result", g))

		out = append(out, rem[b-g:]...)
		rem = rem[:b-g]
	}
	return finish(out)
}
