package shuffle

import "shufflelab/internal/deck"

// NewExchange returns the Fisher-Yates exchange shuffle: for i from
// last down to 1, draw j uniformly from [0,i] and swap. Uniform over
// all N! orderings; the correctness baseline the other algorithms are
// measured against.
func NewExchange() Algorithm {
	return &algorithm{
		desc: Descriptor{
			Name:        "exchange",
			Description: "Fisher-Yates exchange shuffle, uniform over all orderings",
			Complexity:  "O(n)",
		},
		run: runExchange,
	}
}

func runExchange(d deck.Deck, src Source, em emitter) deck.Deck {
	out := d.Clone()
	for i := len(out) - 1; i >= 1; i-- {
		j := src.Intn(i + 1)
		em.swap(i, j)
		out[i], out[j] = out[j], out[i]
	}
	return finish(out)
}
