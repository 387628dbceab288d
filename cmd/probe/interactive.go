package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/parallel-probe/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	probeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelect modelState = iota
	stateRunning
	stateShowResult
)

type interactiveModel struct {
	err      error
	rt       *runtime.Runtime
	result   *runtime.Result
	probes   []runtime.Info
	spin     spinner.Model
	selected int
	state    modelState
}

func newInteractiveModel(rt *runtime.Runtime) *interactiveModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return &interactiveModel{
		rt:     rt,
		probes: rt.Probes(),
		spin:   spin,
		state:  stateSelect,
	}
}

type runDoneMsg struct {
	err    error
	result *runtime.Result
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) runSelected() tea.Cmd {
	name := m.probes[m.selected].Name
	return func() tea.Msg {
		result, err := m.rt.Run(context.Background(), name, nil)
		return runDoneMsg{result: result, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.probes)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelect:
				if len(m.probes) == 0 {
					return m, nil
				}
				m.state = stateRunning
				return m, tea.Batch(m.spin.Tick, m.runSelected())

			case stateShowResult:
				m.state = stateSelect
				m.result = nil
				m.err = nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateSelect
				m.result = nil
				m.err = nil
			}
		}

	case runDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult

	case spinner.TickMsg:
		if m.state == stateRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Parallel Probe"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		if len(m.probes) == 0 {
			b.WriteString("No probes registered.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a probe to run:\n\n")
		for i, info := range m.probes {
			line := probeStyle.Render(info.Name) + "  " + descStyle.Render(info.Description)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + info.Name + "  " + info.Description))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateRunning:
		b.WriteString(fmt.Sprintf("%s Running %s...\n", m.spin.View(), probeStyle.Render(m.probes[m.selected].Name)))

	case stateShowResult:
		name := m.probes[m.selected].Name
		if m.err != nil {
			b.WriteString(fmt.Sprintf("Probe %s failed:\n\n", probeStyle.Render(name)))
			b.WriteString(errorStyle.Render(m.err.Error()))
		} else {
			b.WriteString(fmt.Sprintf("Output of %s (%d lines, %s):\n\n",
				probeStyle.Render(name), len(m.result.Lines), m.result.Duration))
			for _, line := range m.result.Lines {
				b.WriteString(outputStyle.Render(line))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(rt *runtime.Runtime) error {
	p := tea.NewProgram(newInteractiveModel(rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
