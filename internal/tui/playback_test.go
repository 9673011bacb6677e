package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shufflelab/internal/config"
	"shufflelab/internal/deck"
	"shufflelab/internal/shuffle"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	d, err := deck.New(8)
	if err != nil {
		t.Fatal(err)
	}
	steps, err := shuffle.NewExchange().Record(d, shuffle.NewSource(4))
	if err != nil {
		t.Fatal(err)
	}
	return NewModel("exchange", d, steps, config.PlaybackConfig{IntervalMs: 100, Speed: 1.0})
}

func TestPlaybackWalksForward(t *testing.T) {
	m := newTestModel(t)

	var model tea.Model = m
	for i := 0; i < len(m.steps); i++ {
		model, _ = model.(Model).Update(TickMsg(time.Now()))
	}

	final := model.(Model)
	if final.head != len(final.steps)-1 {
		t.Fatalf("expected head at %d, got %d", len(final.steps)-1, final.head)
	}
	if final.playing {
		t.Error("playback should pause at the last step")
	}

	// The walked deck matches a full replay of the same records.
	replayed, err := shuffle.Replay(final.original, final.steps)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(final.current.IDs(), ",") != strings.Join(replayed.IDs(), ",") {
		t.Error("stepwise playback diverged from full replay")
	}
}

func TestScrubBackReplaysFromOrigin(t *testing.T) {
	m := newTestModel(t)

	var model tea.Model = m
	model, _ = model.(Model).Update(key(']'))
	model, _ = model.(Model).Update(key(']'))
	model, _ = model.(Model).Update(key(']'))
	model, _ = model.(Model).Update(key('['))

	got := model.(Model)
	if got.head != 1 {
		t.Fatalf("expected head 1 after three forward and one back, got %d", got.head)
	}

	want, err := shuffle.Replay(got.original, got.steps[:2])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(got.current.IDs(), ",") != strings.Join(want.IDs(), ",") {
		t.Error("scrub back did not match prefix replay")
	}

	model, _ = model.(Model).Update(key('r'))
	reset := model.(Model)
	if reset.head != -1 {
		t.Errorf("expected head -1 after reset, got %d", reset.head)
	}
	if strings.Join(reset.current.IDs(), ",") != strings.Join(reset.original.IDs(), ",") {
		t.Error("reset did not restore the original order")
	}
}

func TestSpeedClamped(t *testing.T) {
	m := newTestModel(t)

	var model tea.Model = m
	for i := 0; i < 20; i++ {
		model, _ = model.(Model).Update(key('+'))
	}
	if got := model.(Model).speed; got != config.MaxSpeed {
		t.Errorf("expected speed clamped at %f, got %f", config.MaxSpeed, got)
	}

	for i := 0; i < 20; i++ {
		model, _ = model.(Model).Update(key('-'))
	}
	if got := model.(Model).speed; got != config.MinSpeed {
		t.Errorf("expected speed clamped at %f, got %f", config.MinSpeed, got)
	}
}
