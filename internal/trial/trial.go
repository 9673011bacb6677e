// Package trial runs shuffle trials: it times the bulk shuffle,
// rebuilds the matching step list from the captured draw trace, scores
// the result, and folds everything into the caller's statistics store.
package trial

import (
	"context"
	"fmt"
	"time"

	"shufflelab/internal/deck"
	"shufflelab/internal/metrics"
	"shufflelab/internal/shuffle"
	"shufflelab/internal/stats"
)

type Config struct {
	Algorithm string
	Size      int
	Seed      int64
	Trials    int
}

// Result is the outcome of a single trial.
type Result struct {
	Algorithm         string
	Seed              int64
	Original          deck.Deck
	Shuffled          deck.Deck
	Steps             []shuffle.Step
	Randomness        int
	DisplacementScore float64
	EntropyScore      float64
	ElapsedMs         float64
	StepCount         int
}

type Runner struct {
	registry *shuffle.Registry
	store    *stats.Store
}

func NewRunner(registry *shuffle.Registry, store *stats.Store) *Runner {
	return &Runner{registry: registry, store: store}
}

// Run executes one trial with the given seed and updates the store.
func (r *Runner) Run(cfg Config) (*Result, error) {
	alg, err := r.registry.Get(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	original, err := deck.New(cfg.Size)
	if err != nil {
		return nil, err
	}

	// Record the draws consumed by the timed bulk run, then replay
	// them through record mode so the step list describes exactly the
	// permutation that was measured.
	src := shuffle.NewRecordingSource(shuffle.NewSource(cfg.Seed))

	start := time.Now()
	shuffled, err := alg.Shuffle(original, src)
	if err != nil {
		return nil, err
	}
	elapsedMs := float64(time.Since(start).Microseconds()) / 1000

	steps, err := alg.Record(original, shuffle.NewTraceSource(src.Draws()))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Algorithm:         cfg.Algorithm,
		Seed:              cfg.Seed,
		Original:          original,
		Shuffled:          shuffled,
		Steps:             steps,
		Randomness:        metrics.Estimate(original, shuffled),
		DisplacementScore: metrics.NewDisplacement().Score(original, shuffled),
		EntropyScore:      metrics.NewEntropy().Score(original, shuffled),
		ElapsedMs:         elapsedMs,
		StepCount:         len(steps),
	}

	if r.store != nil {
		if err := r.store.Update(cfg.Algorithm, original, shuffled, res.ElapsedMs, res.StepCount); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// RunTrials executes cfg.Trials trials, deriving per-trial seeds from
// cfg.Seed, and honors cancellation between trials.
func (r *Runner) RunTrials(ctx context.Context, cfg Config) ([]*Result, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("%w: trial count must be positive, got %d", deck.ErrInvalidInput, cfg.Trials)
	}

	results := make([]*Result, 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		c := cfg
		c.Seed = cfg.Seed + int64(i)
		res, err := r.Run(c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
