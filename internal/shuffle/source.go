package shuffle

import "math/rand"

// Source supplies the random draws an algorithm consumes. *rand.Rand
// satisfies it directly; tests substitute deterministic traces so
// bulk and step modes can be driven by identical draw sequences.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// TraceSource replays a fixed sequence of draws. Out-of-range values
// are reduced modulo n; an exhausted trace yields zeros.
type TraceSource struct {
	draws []int
	next  int
}

func NewTraceSource(draws []int) *TraceSource {
	return &TraceSource{draws: draws}
}

func (t *TraceSource) Intn(n int) int {
	if t.next >= len(t.draws) {
		return 0
	}
	v := t.draws[t.next]
	t.next++
	if v < 0 || v >= n {
		v = ((v % n) + n) % n
	}
	return v
}

// RecordingSource wraps another source and captures every draw, so a
// bulk run can later be replayed exactly in record mode.
type RecordingSource struct {
	inner Source
	draws []int
}

func NewRecordingSource(inner Source) *RecordingSource {
	return &RecordingSource{inner: inner}
}

func (r *RecordingSource) Intn(n int) int {
	v := r.inner.Intn(n)
	r.draws = append(r.draws, v)
	return v
}

// Draws returns the captured draw trace.
func (r *RecordingSource) Draws() []int {
	out := make([]int, len(r.draws))
	copy(out, r.draws)
	return out
}
