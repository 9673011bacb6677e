package trial

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"shufflelab/internal/deck"
	"shufflelab/internal/shuffle"
	"shufflelab/internal/stats"
)

func TestRunnerRun(t *testing.T) {
	registry := shuffle.NewRegistry()
	store := stats.NewStore(registry.Names()...)
	runner := NewRunner(registry, store)

	res, err := runner.Run(Config{Algorithm: "riffle", Size: 20, Seed: 42})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(res.Shuffled) != 20 {
		t.Fatalf("expected 20 cards, got %d", len(res.Shuffled))
	}

	a := append([]string(nil), res.Original.IDs()...)
	b := append([]string(nil), res.Shuffled.IDs()...)
	sort.Strings(a)
	sort.Strings(b)
	if strings.Join(a, ",") != strings.Join(b, ",") {
		t.Error("shuffled deck is not a permutation of the original")
	}

	if res.StepCount != len(res.Steps) {
		t.Errorf("step count %d does not match %d recorded steps", res.StepCount, len(res.Steps))
	}

	// The step list must describe the very permutation that was timed.
	replayed, err := shuffle.Replay(res.Original, res.Steps)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(replayed.IDs(), ",") != strings.Join(res.Shuffled.IDs(), ",") {
		t.Error("recorded steps do not replay to the measured shuffle")
	}

	st, _ := store.Get("riffle")
	if st.ShuffleCount != 1 {
		t.Errorf("expected stats update, count = %d", st.ShuffleCount)
	}
	if len(st.ExecutionTimes) != 1 {
		t.Errorf("expected one execution time sample, got %d", len(st.ExecutionTimes))
	}
}

func TestRunnerErrors(t *testing.T) {
	registry := shuffle.NewRegistry()
	runner := NewRunner(registry, stats.NewStore())

	if _, err := runner.Run(Config{Algorithm: "bogosort", Size: 10, Seed: 1}); !errors.Is(err, deck.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown algorithm, got %v", err)
	}
	if _, err := runner.Run(Config{Algorithm: "exchange", Size: 0, Seed: 1}); !errors.Is(err, deck.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero size, got %v", err)
	}
	if _, err := runner.RunTrials(context.Background(), Config{Algorithm: "exchange", Size: 10, Trials: 0}); !errors.Is(err, deck.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero trials, got %v", err)
	}
}

func TestRunTrials(t *testing.T) {
	registry := shuffle.NewRegistry()
	store := stats.NewStore(registry.Names()...)
	runner := NewRunner(registry, store)

	results, err := runner.RunTrials(context.Background(), Config{
		Algorithm: "exchange", Size: 13, Seed: 7, Trials: 5,
	})
	if err != nil {
		t.Fatalf("trials failed: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	// Seeds advance per trial, so outcomes differ.
	if strings.Join(results[0].Shuffled.IDs(), ",") == strings.Join(results[1].Shuffled.IDs(), ",") {
		t.Error("consecutive trials produced identical permutations")
	}

	st, _ := store.Get("exchange")
	if st.ShuffleCount != 5 {
		t.Errorf("expected 5 stats samples, got %d", st.ShuffleCount)
	}
}

func TestRunTrialsCancellation(t *testing.T) {
	registry := shuffle.NewRegistry()
	runner := NewRunner(registry, stats.NewStore(registry.Names()...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := runner.RunTrials(ctx, Config{Algorithm: "exchange", Size: 52, Seed: 1, Trials: 100})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results after immediate cancel, got %d", len(results))
	}
}
