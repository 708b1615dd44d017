package ui

import (
	"fmt"
	"sort"
	"strings"
)

const (
	scopeWidth  = 64
	scopeHeight = 12
	gaugeWidth  = 22
)

// View renders the full synthesizer frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("SYNTHRS"),
		"",
		labelStyle.Render(fmt.Sprintf("wavetable: %s", m.engine.Shape())),
		waveStyle.Render(renderWave(m.engine.TableSnapshot(), scopeWidth, scopeHeight, m.phase)),
		"",
		m.renderVolume(),
		m.renderMeter(),
		m.renderKeys(),
		"",
		helpStyle.Render("1-4 waveform   +/- volume   a s d f play   Q quit"),
	}

	return frameStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderVolume() string {
	vol := float64(m.engine.Volume())
	filled, rest := renderBar(vol, gaugeWidth)
	return labelStyle.Render("VOL ") +
		gaugeFillStyle.Render(filled) +
		gaugeRestStyle.Render(rest) +
		labelStyle.Render(fmt.Sprintf(" %3.0f%%", vol*100))
}

func (m Model) renderMeter() string {
	level := peak(m.engine.TapSamples(512))
	filled, rest := renderBar(level, gaugeWidth)
	return labelStyle.Render("OUT ") +
		gaugeFillStyle.Render(filled) +
		gaugeRestStyle.Render(rest) +
		labelStyle.Render(fmt.Sprintf(" %d voice(s)", m.engine.ActiveVoices()))
}

func (m Model) renderKeys() string {
	if len(m.held) == 0 {
		return labelStyle.Render("KEY ") + helpStyle.Render("(none)")
	}
	keys := make([]string, 0, len(m.held))
	for k := range m.held {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return labelStyle.Render("KEY ") + activeKeyStyle.Render(strings.Join(keys, " "))
}
