package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// viewModel is the interactive diagram browser: one tab per correction
// scheme, the symbolic-error circuit inside a scrollable viewport (the
// shor diagram is far wider than any terminal).
type viewModel struct {
	schemes  []Scheme
	idx      int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func newViewModel() viewModel {
	return viewModel{schemes: Schemes}
}

// diagram renders the selected scheme's symbolic-error circuit.
func (m viewModel) diagram() string {
	sim := &Simulator{Scheme: m.schemes[m.idx]}
	c, reg, err := sim.SymbolicCircuit()
	if err != nil {
		return fmt.Sprintf("cannot build circuit: %v", err)
	}
	return DrawCircuit(c, reg)
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(msg.Height-6, 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.diagram())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.idx = (m.idx + 1) % len(m.schemes)
			m.viewport.SetContent(m.diagram())
			m.viewport.GotoTop()
		case "shift+tab":
			m.idx = (m.idx + len(m.schemes) - 1) % len(m.schemes)
			m.viewport.SetContent(m.diagram())
			m.viewport.GotoTop()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var tabs []string
	for i, s := range m.schemes {
		name := " " + string(s) + " "
		if i == m.idx {
			tabs = append(tabs, tabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, dimStyle.Render(name))
		}
	}
	tabLine := strings.Join(tabs, dimStyle.Render("│"))

	help := dimStyle.Render("Tab Scheme  ↑↓←→ Scroll  q Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Bell circuit with symbolic errors"),
		tabLine,
		viewFrameStyle.Width(m.width-2).Render(m.viewport.View()),
		help,
	)
}

// runViewTUI starts the interactive diagram browser.
func runViewTUI() error {
	p := tea.NewProgram(newViewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
