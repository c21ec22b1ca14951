package diff

import "github.com/charmbracelet/lipgloss"

// Define colors
var (
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}
	Warning = lipgloss.AdaptiveColor{Light: "#C48A00", Dark: "#F2C94C"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	Border  = lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"}

	addedBackground   = lipgloss.AdaptiveColor{Light: "#D7F5E3", Dark: "#0B3D22"}
	removedBackground = lipgloss.AdaptiveColor{Light: "#FADBD6", Dark: "#4A1410"}
)

// Define styles
var (
	expectedStyle = lipgloss.NewStyle().Foreground(Success)
	actualStyle   = lipgloss.NewStyle().Foreground(Error)
	ruleStyle     = lipgloss.NewStyle().Foreground(Subtle)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	emphasisStyle = lipgloss.NewStyle().Bold(true)

	addedPrefixStyle   = lipgloss.NewStyle().Foreground(Success)
	addedTextStyle     = lipgloss.NewStyle().Background(addedBackground)
	removedPrefixStyle = lipgloss.NewStyle().Foreground(Error)
	removedTextStyle   = lipgloss.NewStyle().Background(removedBackground)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

// panel frames body in a rounded box headed by title.
func panel(title, body string) string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), body))
}
