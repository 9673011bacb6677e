// Package shuffle implements the permutation engine: four shuffle
// algorithms, each with a bulk mode and a step-recording mode that are
// two views of a single implementation. Every algorithm runs against
// an emitter; bulk mode discards the emitted steps while record mode
// collects them, so replaying the records reproduces the bulk result
// for the same draw trace by construction.
package shuffle

import (
	"fmt"

	"shufflelab/internal/deck"
)

// Descriptor is the static description of one algorithm variant.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Complexity  string `json:"complexity"`
}

// Algorithm is a pure permutation over a deck. Shuffle and Record
// consume identical draw sequences from the source: feeding both the
// same trace yields the same permutation, once directly and once as a
// replayable step list.
type Algorithm interface {
	Descriptor() Descriptor
	Shuffle(d deck.Deck, src Source) (deck.Deck, error)
	Record(d deck.Deck, src Source) ([]Step, error)
}

// emitter receives the atomic transformations as an algorithm runs.
type emitter interface {
	swap(i, j int)
	split(at, n int)
	move(src, dst []int, desc string)
}

type discardEmitter struct{}

func (discardEmitter) swap(i, j int)                    {}
func (discardEmitter) split(at, n int)                  {}
func (discardEmitter) move(src, dst []int, desc string) {}

type recordEmitter struct {
	steps []Step
}

func (r *recordEmitter) swap(i, j int) {
	r.steps = append(r.steps, Step{
		Description:          fmt.Sprintf("swap cards at positions %d and %d", i, j),
		Kind:                 KindSwap,
		AffectedIndices:      []int{i, j},
		SourcePositions:      []int{i, j},
		DestinationPositions: []int{j, i},
	})
}

func (r *recordEmitter) split(at, n int) {
	all := identity(n)
	r.steps = append(r.steps, Step{
		Description:          fmt.Sprintf("split deck into halves of %d and %d cards", at, n-at),
		Kind:                 KindSplit,
		AffectedIndices:      all,
		SourcePositions:      all,
		DestinationPositions: identity(n),
	})
}

func (r *recordEmitter) move(src, dst []int, desc string) {
	r.steps = append(r.steps, Step{
		Description:          desc,
		Kind:                 KindMove,
		AffectedIndices:      append([]int(nil), dst...),
		SourcePositions:      append([]int(nil), src...),
		DestinationPositions: append([]int(nil), dst...),
	})
}

func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func indexRange(lo, hi int) []int {
	ids := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		ids = append(ids, i)
	}
	return ids
}

func checkInput(d deck.Deck) error {
	if len(d) == 0 {
		return fmt.Errorf("%w: cannot shuffle an empty deck", deck.ErrInvalidInput)
	}
	return d.Validate()
}

// finish renumbers positions and clears highlights on a completed
// permutation, in place.
func finish(d deck.Deck) deck.Deck {
	for i := range d {
		d[i].Position = i
		d[i].Highlighted = false
	}
	return d
}

// runner is the single shared implementation of one algorithm; the
// Shuffle/Record split is only a choice of emitter.
type runner func(d deck.Deck, src Source, em emitter) deck.Deck

type algorithm struct {
	desc Descriptor
	run  runner
}

func (a *algorithm) Descriptor() Descriptor { return a.desc }

func (a *algorithm) Shuffle(d deck.Deck, src Source) (deck.Deck, error) {
	if err := checkInput(d); err != nil {
		return nil, err
	}
	return a.run(d, src, discardEmitter{}), nil
}

func (a *algorithm) Record(d deck.Deck, src Source) ([]Step, error) {
	if err := checkInput(d); err != nil {
		return nil, err
	}
	rec := &recordEmitter{}
	a.run(d, src, rec)
	return rec.steps, nil
}
