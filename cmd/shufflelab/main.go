package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"shufflelab/internal/config"
	"shufflelab/internal/deck"
	"shufflelab/internal/metrics"
	"shufflelab/internal/shuffle"
	"shufflelab/internal/stats"
	"shufflelab/internal/storage"
	"shufflelab/internal/trial"
	"shufflelab/internal/tui"
)

var (
	dataDir    string
	size       int
	seed       int64
	trials     int
	configFile string
	preset     string
	plot       bool
	intervalMs int
	speed      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shufflelab",
		Short: "card shuffle algorithm lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".shufflelab", "data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list shuffle algorithms",
		RunE:  listAlgorithms,
	}

	shuffleCmd := &cobra.Command{
		Use:   "shuffle [algorithm]",
		Short: "shuffle a deck and score the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runShuffle,
	}
	shuffleCmd.Flags().IntVar(&size, "size", config.DefaultSize, "deck size")
	shuffleCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	shuffleCmd.Flags().IntVar(&trials, "trials", config.DefaultTrials, "number of trials")
	shuffleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	shuffleCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	shuffleCmd.Flags().BoolVar(&plot, "plot", false, "plot the displacement histogram")

	stepsCmd := &cobra.Command{
		Use:   "steps [algorithm]",
		Short: "print the recorded transformation steps",
		Args:  cobra.ExactArgs(1),
		RunE:  printSteps,
	}
	stepsCmd.Flags().IntVar(&size, "size", config.DefaultSize, "deck size")
	stepsCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "replay the shuffle step by step in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  playSteps,
	}
	playCmd.Flags().IntVar(&size, "size", config.DefaultSize, "deck size")
	playCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	playCmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "base step interval (ms)")
	playCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "playback speed multiplier (0.5-3.0)")
	playCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "benchmark algorithms over repeated trials",
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntVar(&size, "size", config.DefaultSize, "deck size")
	benchCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	benchCmd.Flags().IntVar(&trials, "trials", 100, "trials per algorithm")
	benchCmd.Flags().BoolVar(&plot, "plot", false, "plot execution times")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm1] [algorithm2]",
		Short: "compare two algorithms metric by metric",
		Args:  cobra.ExactArgs(2),
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().IntVar(&size, "size", config.DefaultSize, "deck size")
	compareCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	compareCmd.Flags().IntVar(&trials, "trials", 100, "trials per algorithm")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "show aggregate statistics",
		RunE:  showStats,
	}
	statsCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "reset aggregate statistics for all algorithms",
		RunE:  clearStats,
	})

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, shuffleCmd, stepsCmd, playCmd, benchCmd, compareCmd, runsCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	registry := shuffle.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOMPLEXITY\tDESCRIPTION")
	for _, desc := range registry.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", desc.Name, desc.Complexity, desc.Description)
	}
	return w.Flush()
}

// resolveConfig merges preset, config file, and changed flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command, algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Algorithm = algorithm

	if preset != "" {
		p := config.GetPreset(algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Algorithm = algorithm
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("trials") {
		cfg.Trials = trials
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Lookup("interval") != nil && cmd.Flags().Changed("interval") {
		cfg.Playback.IntervalMs = intervalMs
	}
	if cmd.Flags().Lookup("speed") != nil && cmd.Flags().Changed("speed") {
		cfg.Playback.Speed = speed
	}
	return cfg, nil
}

func runShuffle(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := shuffle.NewRegistry()
	store, err := st.LoadStats(registry.Names()...)
	if err != nil {
		return err
	}

	runner := trial.NewRunner(registry, store)
	results, err := runner.RunTrials(context.Background(), trial.Config{
		Algorithm: cfg.Algorithm,
		Size:      cfg.Size,
		Seed:      cfg.Seed,
		Trials:    cfg.Trials,
	})
	if err != nil {
		return err
	}

	last := results[len(results)-1]
	runID, err := st.SaveRun(last)
	if err != nil {
		return err
	}
	if err := st.SaveStats(store); err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", last.Algorithm)
	fmt.Printf("trials: %d\n", len(results))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", last.StepCount)
	fmt.Printf("elapsed: %.3f ms\n", last.ElapsedMs)
	fmt.Println()
	fmt.Printf("original: %v\n", last.Original.IDs())
	fmt.Printf("shuffled: %v\n", last.Shuffled.IDs())
	fmt.Println()
	fmt.Printf("randomness: %d / 100\n", last.Randomness)
	fmt.Printf("  displacement: %.0f\n", last.DisplacementScore)
	fmt.Printf("  entropy: %.0f\n", last.EntropyScore)

	if plot {
		hist := metrics.Histogram(last.Original, last.Shuffled)
		if len(hist) > 1 {
			fmt.Println()
			fmt.Println(asciigraph.Plot(hist,
				asciigraph.Height(10),
				asciigraph.Width(70),
				asciigraph.Caption("cards per displacement distance"),
			))
		}
	}
	return nil
}

func printSteps(cmd *cobra.Command, args []string) error {
	registry := shuffle.NewRegistry()
	alg, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	d, err := deck.New(size)
	if err != nil {
		return err
	}

	steps, err := alg.Record(d, shuffle.NewSource(seed))
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d steps (seed %d, %d cards)\n\n", args[0], len(steps), seed, size)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tFROM\tTO\tDESCRIPTION")
	for i, s := range steps {
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\t%s\n", i+1, s.Kind, s.SourcePositions, s.DestinationPositions, s.Description)
	}
	return w.Flush()
}

func playSteps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := shuffle.NewRegistry()
	alg, err := registry.Get(cfg.Algorithm)
	if err != nil {
		return err
	}

	d, err := deck.New(cfg.Size)
	if err != nil {
		return err
	}

	steps, err := alg.Record(d, shuffle.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg.Algorithm, d, steps, cfg.Playback)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	registry := shuffle.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.Names()
	}

	store := stats.NewStore(names...)
	runner := trial.NewRunner(registry, store)

	fmt.Printf("benchmarking %d cards over %d trials\n\n", size, trials)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTRIALS\tAVG STEPS\tRANDOMNESS\tAVG TIME")

	timesByName := make(map[string][]float64, len(names))
	for _, name := range names {
		results, err := runner.RunTrials(context.Background(), trial.Config{
			Algorithm: name,
			Size:      size,
			Seed:      seed,
			Trials:    trials,
		})
		if err != nil {
			return err
		}

		agg, _ := store.Get(name)
		total := 0.0
		times := make([]float64, 0, len(results))
		for _, res := range results {
			total += res.ElapsedMs
			times = append(times, res.ElapsedMs)
		}
		timesByName[name] = times

		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.3f ms\n",
			name, agg.ShuffleCount, agg.AverageStepCount, agg.RandomnessScore,
			total/float64(len(results)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot {
		for _, name := range names {
			fmt.Println()
			fmt.Println(asciigraph.Plot(timesByName[name],
				asciigraph.Height(8),
				asciigraph.Width(70),
				asciigraph.Caption(fmt.Sprintf("%s execution time (ms) per trial", name)),
			))
		}
	}
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	nameA, nameB := args[0], args[1]

	registry := shuffle.NewRegistry()
	store := stats.NewStore(nameA, nameB)
	runner := trial.NewRunner(registry, store)

	for _, name := range []string{nameA, nameB} {
		if _, err := runner.RunTrials(context.Background(), trial.Config{
			Algorithm: name,
			Size:      size,
			Seed:      seed,
			Trials:    trials,
		}); err != nil {
			return err
		}
	}

	a, _ := store.Get(nameA)
	b, _ := store.Get(nameB)
	winners := stats.Compare(a, b)

	fmt.Printf("%s vs %s (%d cards, %d trials each)\n\n", nameA, nameB, size, trials)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tWINNER")
	fmt.Fprintf(w, "randomness\t%s\n", winners.Randomness)
	fmt.Fprintf(w, "speed\t%s\n", winners.Speed)
	fmt.Fprintf(w, "step count\t%s\n", winners.StepCount)
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tCARDS\tSTEPS\tRANDOMNESS\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.3f ms\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.StepCount,
			run.Randomness,
			run.ElapsedMs,
		)
	}
	return w.Flush()
}

func showStats(cmd *cobra.Command, args []string) error {
	registry := shuffle.NewRegistry()
	st := storage.New(dataDir)
	store, err := st.LoadStats(registry.Names()...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSHUFFLES\tAVG STEPS\tRANDOMNESS\tSAMPLES")
	for _, agg := range store.All() {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%d\n",
			agg.Algorithm, agg.ShuffleCount, agg.AverageStepCount, agg.RandomnessScore, len(agg.ExecutionTimes))
	}
	return w.Flush()
}

func clearStats(cmd *cobra.Command, args []string) error {
	registry := shuffle.NewRegistry()
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	store, err := st.LoadStats(registry.Names()...)
	if err != nil {
		return err
	}
	store.Clear()
	if err := st.SaveStats(store); err != nil {
		return err
	}
	fmt.Println("statistics cleared")
	return nil
}
