// Package stats keeps running per-algorithm aggregates built from
// estimator output. The store is owned by the caller and passed in
// explicitly; nothing here holds process-lifetime state on its own.
package stats

import (
	"fmt"

	"shufflelab/internal/deck"
	"shufflelab/internal/metrics"
)

// Stats is the running aggregate for one algorithm. Averages are
// unweighted means over every recorded sample.
type Stats struct {
	Algorithm        string    `json:"algorithm"`
	ShuffleCount     int       `json:"shuffle_count"`
	AverageStepCount float64   `json:"average_step_count"`
	RandomnessScore  float64   `json:"randomness_score"`
	ExecutionTimes   []float64 `json:"execution_times_ms"`
}

// Store is the per-algorithm aggregate map, keyed by algorithm name.
type Store struct {
	order  []string
	byName map[string]*Stats
}

// NewStore returns a store with zeroed aggregates for the given names.
func NewStore(names ...string) *Store {
	s := &Store{byName: make(map[string]*Stats)}
	for _, name := range names {
		s.Init(name)
	}
	return s
}

// FromList rebuilds a store from a snapshot, preserving order.
func FromList(list []Stats) *Store {
	s := &Store{byName: make(map[string]*Stats, len(list))}
	for _, st := range list {
		cp := st
		cp.ExecutionTimes = append([]float64(nil), st.ExecutionTimes...)
		if _, ok := s.byName[st.Algorithm]; !ok {
			s.order = append(s.order, st.Algorithm)
		}
		s.byName[st.Algorithm] = &cp
	}
	return s
}

// Init resets the named algorithm to a zeroed record, registering it
// if it is new.
func (s *Store) Init(name string) {
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}
	s.byName[name] = &Stats{Algorithm: name}
}

// Get returns a copy of the named aggregate.
func (s *Store) Get(name string) (Stats, bool) {
	st, ok := s.byName[name]
	if !ok {
		return Stats{}, false
	}
	cp := *st
	cp.ExecutionTimes = append([]float64(nil), st.ExecutionTimes...)
	return cp, true
}

// All returns copies of every aggregate in registration order.
func (s *Store) All() []Stats {
	out := make([]Stats, 0, len(s.order))
	for _, name := range s.order {
		st, _ := s.Get(name)
		out = append(out, st)
	}
	return out
}

// Update folds one shuffle into the named aggregate: it bumps the
// count, recomputes the running means of step count and randomness
// score, and appends the execution time to the history.
func (s *Store) Update(name string, original, shuffled deck.Deck, elapsedMs float64, stepCount int) error {
	st, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: no statistics registered for algorithm %q", deck.ErrInvalidInput, name)
	}

	score := float64(metrics.Estimate(original, shuffled))

	oldCount := float64(st.ShuffleCount)
	st.ShuffleCount++
	newCount := float64(st.ShuffleCount)
	st.AverageStepCount = (st.AverageStepCount*oldCount + float64(stepCount)) / newCount
	st.RandomnessScore = (st.RandomnessScore*oldCount + score) / newCount
	st.ExecutionTimes = append(st.ExecutionTimes, elapsedMs)
	return nil
}

// Clear resets every registered algorithm at once.
func (s *Store) Clear() {
	for _, name := range s.order {
		s.byName[name] = &Stats{Algorithm: name}
	}
}
