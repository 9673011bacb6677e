// Package tui is the terminal playback consumer: it walks a
// precomputed step list against the pristine original deck at an
// adjustable pace. All sequencing lives here; the engine only ever
// sees strictly-forward Apply and Replay calls.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shufflelab/internal/config"
	"shufflelab/internal/deck"
	"shufflelab/internal/shuffle"
)

const cardsPerRow = 13

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	cardStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4)
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Width(4)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Bold(true).Width(4)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type TickMsg time.Time

// Model holds the playback state: the pristine original deck, the
// full step list, and a play head. Scrubbing backward replays the
// prefix of steps from the original; there is no incremental undo.
type Model struct {
	algorithm string
	original  deck.Deck
	current   deck.Deck
	steps     []shuffle.Step
	head      int // index of the last applied step, -1 before the first
	playing   bool
	speed     float64
	interval  time.Duration
	err       error
}

func NewModel(algorithm string, original deck.Deck, steps []shuffle.Step, pb config.PlaybackConfig) Model {
	return Model{
		algorithm: algorithm,
		original:  original.ResetPositions().ClearHighlights(),
		current:   original.ResetPositions().ClearHighlights(),
		steps:     steps,
		head:      -1,
		playing:   true,
		speed:     config.ClampSpeed(pb.Speed),
		interval:  time.Duration(pb.IntervalMs) * time.Millisecond,
	}
}

func (m Model) tick() tea.Cmd {
	d := time.Duration(float64(m.interval) / m.speed)
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "]", "right":
			m.playing = false
			m.advance()
		case "[", "left":
			m.playing = false
			m.seek(m.head - 1)
		case "r":
			m.playing = false
			m.seek(-1)
		case "e":
			m.playing = false
			m.seek(len(m.steps) - 1)
		case "+", "=", "up":
			m.speed = config.ClampSpeed(m.speed + 0.25)
		case "-", "down":
			m.speed = config.ClampSpeed(m.speed - 0.25)
		}
		return m, nil

	case TickMsg:
		if m.playing {
			m.advance()
			if m.head >= len(m.steps)-1 {
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	if m.head >= len(m.steps)-1 || m.err != nil {
		return
	}
	next, err := shuffle.Apply(m.current, m.steps[m.head+1])
	if err != nil {
		m.err = err
		m.playing = false
		return
	}
	m.current = next
	m.head++
}

// seek rebuilds the deck at step index target by replaying every
// record from the original.
func (m *Model) seek(target int) {
	if target < -1 {
		target = -1
	}
	if target > len(m.steps)-1 {
		target = len(m.steps) - 1
	}
	result, err := shuffle.Replay(m.original, m.steps[:target+1])
	if err != nil {
		m.err = err
		return
	}
	m.current = result
	m.head = target
	m.err = nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("shufflelab · %s", m.algorithm)))
	b.WriteString("\n")
	b.WriteString(renderDeck(m.current))
	b.WriteString("\n")

	status := "paused"
	if m.playing {
		status = "playing"
	}
	b.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.head+1, len(m.steps))) + "\n")
	b.WriteString(labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%.2fx (%s)", m.speed, status)) + "\n")
	if m.head >= 0 && m.head < len(m.steps) {
		b.WriteString(labelStyle.Render("action") + valueStyle.Render(m.steps[m.head].Description) + "\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString(helpStyle.Render("space pause · [/] step · r reset · e end · +/- speed · q quit"))
	b.WriteString("\n")
	return b.String()
}

func renderDeck(d deck.Deck) string {
	var rows []string
	for start := 0; start < len(d); start += cardsPerRow {
		end := start + cardsPerRow
		if end > len(d) {
			end = len(d)
		}
		var cells []string
		for _, c := range d[start:end] {
			style := cardStyle
			if c.Highlighted {
				style = highlightStyle
			} else if c.Suit.Red() {
				style = redCardStyle
			}
			cells = append(cells, style.Render(c.Label()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
