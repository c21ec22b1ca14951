package reporting

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rostan-t/refery/internal/diff"
)

// lineWidth is the width of suite titles.
const lineWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(diff.Subtle)
	commandStyle = lipgloss.NewStyle().Foreground(diff.Subtle).Italic(true)
	outputStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(diff.Border).
			PaddingLeft(1)
	passedStyle  = lipgloss.NewStyle().Foreground(diff.Success).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(diff.Error).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(diff.Warning)
)
