package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-pedal/dsp/engine"
	"github.com/cwbudde/algo-pedal/hw"
)

const (
	potStep  = 0.02
	barWidth = 30
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	reverseStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

type potControl struct {
	name string
	pot  *hw.SimPot
}

// tickMsg drives the periodic snapshot refresh. The UI only ever reads
// the published settings; the control loop remains the sole writer.
type tickMsg time.Time

type model struct {
	sampleRate int
	params     *engine.Params
	pots       []potControl
	button     *hw.SimButton
	selected   int
}

func newModel(sampleRate int, params *engine.Params, pots []potControl, button *hw.SimButton) model {
	return model{
		sampleRate: sampleRate,
		params:     params,
		pots:       pots,
		button:     button,
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.pots)-1 {
				m.selected++
			}
		case "left", "h":
			m.adjust(-potStep)
		case "right", "l":
			m.adjust(potStep)
		case " ":
			m.button.Tap()
		}
	case tickMsg:
		return m, tick()
	}

	return m, nil
}

func (m model) adjust(delta float64) {
	pot := m.pots[m.selected].pot
	pot.SetPosition(pot.Position() + delta)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pedalsim"))
	b.WriteString("\n\n")

	for i, pc := range m.pots {
		marker := "  "
		name := fmt.Sprintf("%-8s", pc.name)

		if i == m.selected {
			marker = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}

		pos := pc.pot.Position()
		b.WriteString(fmt.Sprintf("%s%s %s %4.0f%%\n", marker, name, bar(pos), pos*100))
	}

	s := m.params.Snapshot()

	direction := "forward"
	if s.Reverse {
		direction = reverseStyle.Render("reverse")
	}

	b.WriteString(fmt.Sprintf("\n  delay %.1f ms  repeats %d  wet %.0f%%  shimmer %.0f%%  %s\n",
		float64(s.DelaySamples)/float64(m.sampleRate)*1000,
		s.Repeats, s.WetMix*100, s.ShimmerLevel*100, direction))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  up/down select   left/right adjust   space reverse   q quit"))
	b.WriteString("\n")

	return b.String()
}

func bar(position float64) string {
	filled := int(position*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
