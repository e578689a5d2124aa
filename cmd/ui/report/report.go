package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jvminspect/pkg/inspect"
)

var (
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#01FAC6")).
			Foreground(lipgloss.Color("#030303")).
			Bold(true).
			Padding(0, 1)

	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#01FAC6")).
			Padding(1, 2).
			Width(60)
)

// Render formats a classification result for terminal display.
func Render(r inspect.Report) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Installation Classification"))
	s.WriteString("\n\n")

	var content strings.Builder

	content.WriteString(labelStyle.Render("Name: "))
	content.WriteString(valueStyle.Render(r.DisplayName))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Home: "))
	content.WriteString(detailStyle.Render(r.Home))
	content.WriteString("\n")

	if !r.Valid {
		content.WriteString("\n")
		content.WriteString(errorStyle.Render("✗ " + r.Error))
		s.WriteString(boxStyle.Render(content.String()))
		return s.String()
	}

	content.WriteString(labelStyle.Render("Version: "))
	content.WriteString(detailStyle.Render(r.Version))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Vendor: "))
	content.WriteString(detailStyle.Render(r.Vendor))
	content.WriteString("\n\n")

	if len(r.Capabilities) > 0 {
		content.WriteString(labelStyle.Render("Capabilities:"))
		content.WriteString("\n")
		for _, c := range r.Capabilities {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(detailStyle.Render(c))
			content.WriteString("\n")
		}
	} else {
		content.WriteString(detailStyle.Render("Runtime only, no compiler found."))
		content.WriteString("\n")
	}

	s.WriteString(boxStyle.Render(content.String()))
	return s.String()
}
