package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/contrasty/colour"
)

// renderSwatch renders a sample of the foreground colour over the background
// so the result can be judged by eye.
func renderSwatch(fg, bg colour.Color) string {
	sample := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Padding(0, 1).
		Render("The quick brown fox jumps over the lazy dog")

	label := lipgloss.NewStyle().
		Faint(true).
		Render(fg.Hex() + " on " + bg.Hex())

	return lipgloss.JoinVertical(lipgloss.Left, sample, label)
}
