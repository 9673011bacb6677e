package shuffle

import (
	"fmt"

	"shufflelab/internal/deck"
)

// Kind classifies a transformation step.
type Kind string

const (
	KindSwap  Kind = "swap"
	KindMove  Kind = "move"
	KindSplit Kind = "split"
	KindMerge Kind = "merge"
)

// Step is one atomic, replayable transformation record. Positions are
// expressed against the full sequence as it stands when the step is
// applied. Steps are immutable once emitted and must be replayed in
// order, starting from the pristine pre-shuffle deck.
type Step struct {
	Description          string `json:"description"`
	Kind                 Kind   `json:"kind"`
	AffectedIndices      []int  `json:"affected_indices"`
	SourcePositions      []int  `json:"source_positions"`
	DestinationPositions []int  `json:"destination_positions"`
}

func (s Step) validate(n int) error {
	switch s.Kind {
	case KindSwap:
		if len(s.AffectedIndices) != 2 {
			return fmt.Errorf("%w: swap step needs exactly two indices, got %d", deck.ErrInvariantViolation, len(s.AffectedIndices))
		}
	case KindMove:
		if len(s.SourcePositions) != len(s.DestinationPositions) {
			return fmt.Errorf("%w: move step source/destination length mismatch (%d vs %d)",
				deck.ErrInvariantViolation, len(s.SourcePositions), len(s.DestinationPositions))
		}
	case KindSplit, KindMerge:
	default:
		return fmt.Errorf("%w: unknown step kind %q", deck.ErrInvariantViolation, s.Kind)
	}

	for _, group := range [][]int{s.AffectedIndices, s.SourcePositions, s.DestinationPositions} {
		for _, idx := range group {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: step index %d out of range [0,%d)", deck.ErrInvariantViolation, idx, n)
			}
		}
	}
	return nil
}

// Apply replays one step against d and returns the resulting deck.
// Swap exchanges the two affected indices. Move extracts the cards at
// the source positions and reinserts them at the destination
// positions, with unlisted cards keeping their relative order. Split
// and merge are annotation-only. The affected indices come back
// highlighted, positions renumbered; d itself is never mutated.
func Apply(d deck.Deck, st Step) (deck.Deck, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: cannot apply step to an empty deck", deck.ErrInvalidInput)
	}
	if err := st.validate(len(d)); err != nil {
		return nil, err
	}

	var out deck.Deck
	switch st.Kind {
	case KindSwap:
		out = d.Clone()
		i, j := st.AffectedIndices[0], st.AffectedIndices[1]
		out[i], out[j] = out[j], out[i]
	case KindMove:
		out = applyMove(d, st)
	default:
		out = d.Clone()
	}

	for i := range out {
		out[i].Position = i
		out[i].Highlighted = false
	}
	for _, idx := range st.AffectedIndices {
		out[idx].Highlighted = true
	}
	return out, nil
}

func applyMove(d deck.Deck, st Step) deck.Deck {
	n := len(d)
	taken := make([]bool, n)
	for _, s := range st.SourcePositions {
		taken[s] = true
	}

	out := make(deck.Deck, n)
	placed := make([]bool, n)
	for k, dst := range st.DestinationPositions {
		out[dst] = d[st.SourcePositions[k]]
		placed[dst] = true
	}

	slot := 0
	for i := 0; i < n; i++ {
		if taken[i] {
			continue
		}
		for placed[slot] {
			slot++
		}
		out[slot] = d[i]
		placed[slot] = true
	}
	return out
}

// Replay applies steps strictly in order against the pristine original
// deck. Resuming playback from an arbitrary step index means calling
// Replay with the prefix of records up to that index; there is no
// incremental undo.
func Replay(original deck.Deck, steps []Step) (deck.Deck, error) {
	current := original.ResetPositions().ClearHighlights()
	for i, st := range steps {
		next, err := Apply(current, st)
		if err != nil {
			return nil, fmt.Errorf("replay failed at step %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}
