package shuffle

import (
	"fmt"

	"shufflelab/internal/deck"
)

// NewRiffle returns the riffle shuffle: split near the midpoint with a
// ±1 perturbation clamped to [1,N-1], then interleave with a 50/50
// draw whenever both halves still hold cards.
func NewRiffle() Algorithm {
	return &algorithm{
		desc: Descriptor{
			Name:        "riffle",
			Description: "split near the middle and interleave the halves",
			Complexity:  "O(n)",
		},
		run: runRiffle,
	}
}

func runRiffle(d deck.Deck, src Source, em emitter) deck.Deck {
	n := len(d)
	if n < 2 {
		return finish(d.Clone())
	}

	at := n/2 + src.Intn(3) - 1
	if at < 1 {
		at = 1
	}
	if at > n-1 {
		at = n - 1
	}
	em.split(at, n)

	// Replay layout: output prefix, then remaining left half, then
	// remaining right half. The next left card already sits at the
	// output boundary; the next right card sits past the remaining
	// left cards.
	left := d[:at]
	right := d[at:]
	out := make(deck.Deck, 0, n)
	li, ri := 0, 0
	for li < len(left) || ri < len(right) {
		takeLeft := ri >= len(right)
		if li < len(left) && ri < len(right) {
			takeLeft = src.Intn(2) == 0
		}

		a := len(out)
		if takeLeft {
			em.move([]int{a}, []int{a},
				fmt.Sprintf("take card %d of the left half", li+1))
			out = append(out, left[li])
			li++
		} else {
			em.move([]int{a + (len(left) - li)}, []int{a},
				fmt.Sprintf("take card %d of the right half", ri+1))
			out = append(out, right[ri])
			ri++
		}
	}
	return finish(out)
}
