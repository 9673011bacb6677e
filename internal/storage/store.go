// Package storage persists shuffle runs and the aggregate statistics
// store under a local data directory. This is consumer plumbing for
// the CLI; the engine itself never touches the filesystem.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"shufflelab/internal/stats"
	"shufflelab/internal/trial"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                string    `json:"id"`
	Algorithm         string    `json:"algorithm"`
	Timestamp         time.Time `json:"timestamp"`
	Seed              int64     `json:"seed"`
	Size              int       `json:"size"`
	StepCount         int       `json:"step_count"`
	ElapsedMs         float64   `json:"elapsed_ms"`
	Randomness        int       `json:"randomness"`
	DisplacementScore float64   `json:"displacement_score"`
	EntropyScore      float64   `json:"entropy_score"`
}

// SaveRun writes one trial result as a run directory holding
// metadata.json, deck.csv (original and final order side by side) and
// steps.csv.
func (s *Store) SaveRun(res *trial.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", res.Algorithm, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                runID,
		Algorithm:         res.Algorithm,
		Timestamp:         time.Now(),
		Seed:              res.Seed,
		Size:              len(res.Original),
		StepCount:         res.StepCount,
		ElapsedMs:         res.ElapsedMs,
		Randomness:        res.Randomness,
		DisplacementScore: res.DisplacementScore,
		EntropyScore:      res.EntropyScore,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeDeckCSV(runDir, res); err != nil {
		return "", err
	}
	if err := s.writeStepsCSV(runDir, res); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeDeckCSV(runDir string, res *trial.Result) error {
	file, err := os.Create(filepath.Join(runDir, "deck.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"position", "original", "shuffled"}); err != nil {
		return err
	}
	for i := range res.Shuffled {
		orig := ""
		if i < len(res.Original) {
			orig = res.Original[i].ID
		}
		row := []string{strconv.Itoa(i), orig, res.Shuffled[i].ID}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeStepsCSV(runDir string, res *trial.Result) error {
	file, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"step", "kind", "sources", "destinations", "description"}); err != nil {
		return err
	}
	for i, st := range res.Steps {
		row := []string{
			strconv.Itoa(i),
			string(st.Kind),
			joinInts(st.SourcePositions),
			joinInts(st.DestinationPositions),
			st.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(vals []int) string {
	out := ""
	for i, v := range vals {
		if i > 0 {
			out += " "
		}
		out += strconv.Itoa(v)
	}
	return out
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

const statsFile = "stats.json"

// SaveStats persists the aggregate statistics store.
func (s *Store) SaveStats(st *stats.Store) error {
	data, err := json.MarshalIndent(st.All(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.baseDir, statsFile), data, 0644)
}

// LoadStats restores the aggregate statistics store, seeding zeroed
// records for any of the given algorithm names not yet on disk.
func (s *Store) LoadStats(names ...string) (*stats.Store, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, statsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return stats.NewStore(names...), nil
		}
		return nil, err
	}

	var list []stats.Stats
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	st := stats.FromList(list)
	for _, name := range names {
		if _, ok := st.Get(name); !ok {
			st.Init(name)
		}
	}
	return st, nil
}
