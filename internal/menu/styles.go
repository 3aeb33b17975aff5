package menu

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles are bound to stderr: stdout carries only the resolved path, so the
// color profile has to come from the stream the menu actually renders to.
var (
	renderer = lipgloss.NewRenderer(os.Stderr)

	markStyle   = renderer.NewStyle().Foreground(lipgloss.Color("36"))
	headerStyle = renderer.NewStyle().Bold(true)
)
