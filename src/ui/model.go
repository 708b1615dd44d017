// Package ui implements the Bubbletea TUI for the synthesizer: key capture,
// the wavetable scope and the volume gauge.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jensert/synthrs/src/synth"
)

type tickMsg time.Time

const tickEvery = 50 * time.Millisecond

// Terminals report key presses and repeats but never releases, so note-off
// is synthesized: every press refreshes the key's hold deadline and the tick
// loop releases keys whose deadline passed (the OS repeat stopped).
const noteHold = 250 * time.Millisecond

// keyFreqs maps the playable keys to their frequencies (C4 D4 E4 F4).
var keyFreqs = map[rune]float32{
	'a': 261.63,
	's': 293.66,
	'd': 329.63,
	'f': 349.23,
}

// Model is the Bubbletea model wired to the synth engine.
type Model struct {
	engine   *synth.Engine
	held     map[rune]time.Time // note key -> hold deadline
	phase    float64            // scroll offset of the wavetable scope
	width    int
	height   int
	quitting bool
}

// NewModel creates a Model wired to the given engine.
func NewModel(e *synth.Engine) Model {
	return Model{
		engine: e,
		held:   make(map[rune]time.Time),
	}
}

// Init starts the tick timer and requests the terminal size.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.WindowSize())
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses, ticks, and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		now := time.Time(msg)
		for key, deadline := range m.held {
			if now.After(deadline) {
				m.engine.CommandCh <- synth.NoteOffCommand{Key: key}
				delete(m.held, key)
			}
		}
		m.phase += 0.05
		if m.phase > 2.0 {
			m.phase -= 2.0
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "Q", "ctrl+c":
		m.quitting = true
	case "1":
		m.engine.CommandCh <- synth.SetWaveformCommand{Shape: synth.Sine}
	case "2":
		m.engine.CommandCh <- synth.SetWaveformCommand{Shape: synth.Saw}
	case "3":
		m.engine.CommandCh <- synth.SetWaveformCommand{Shape: synth.Square}
	case "4":
		m.engine.CommandCh <- synth.SetWaveformCommand{Shape: synth.Triangle}
	case "+", "=":
		m.engine.CommandCh <- synth.VolumeUpCommand{}
	case "-":
		m.engine.CommandCh <- synth.VolumeDownCommand{}
	default:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			return
		}
		key := msg.Runes[0]
		freq, ok := keyFreqs[key]
		if !ok {
			return
		}
		if _, holding := m.held[key]; !holding {
			// duplicate note-on for a held key is a no-op in the pool
			// anyway, but skipping it here keeps the channel quiet under
			// key repeat
			m.engine.CommandCh <- synth.NoteOnCommand{Frequency: freq, Key: key}
		}
		m.held[key] = time.Now().Add(noteHold)
	}
}
