// Package tui renders the interactive picker over classified installations.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jvminspect/pkg/metadata"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#030303")).
			Background(lipgloss.Color("#01FAC6")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	defaultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the picker state. Selected carries the chosen home after the
// program finishes; it stays empty when the user cancels.
type Model struct {
	installations []*metadata.InstallationMetadata
	defaultHome   string
	cursor        int
	quitting      bool

	Selected string
}

func NewModel(installations []*metadata.InstallationMetadata, defaultHome string) Model {
	return Model{
		installations: installations,
		defaultHome:   defaultHome,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.installations) - 1
			}
		case "down", "j":
			if m.cursor < len(m.installations)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
		case "enter":
			if len(m.installations) > 0 {
				m.Selected = m.installations[m.cursor].JavaHome()
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.installations) == 0 {
		return "No installations registered.\nPress q to quit.\n"
	}

	s := titleStyle.Render("JVM Installations") + "\n\n"

	for i, md := range m.installations {
		cursor := "  "
		if m.cursor == i {
			cursor = "> "
		}

		marker := " "
		if md.JavaHome() == m.defaultHome {
			marker = "*"
		}

		row := fmt.Sprintf("[%s] %-28s %s", marker, md.DisplayName(), md.JavaHome())

		switch {
		case m.cursor == i:
			s += selectedStyle.Render(cursor + row)
		case !md.IsValid():
			s += invalidStyle.Render(cursor + row)
		case md.JavaHome() == m.defaultHome:
			s += defaultStyle.Render(cursor + row)
		default:
			s += normalStyle.Render(cursor + row)
		}
		s += "\n"
	}

	s += "\n" + helpStyle.Render("↑/↓: Navigate • Enter: Show details • q: Quit") + "\n"
	return s
}
