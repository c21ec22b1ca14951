package color

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by Configure.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// ThemeEnv forces the dark or light variant of adaptive colors.
const ThemeEnv = "REFERY_THEME"

// Initialize tells lipgloss whether the terminal has a dark background.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Configure applies a color mode and the theme forced by the environment.
func Configure(mode string) error {
	switch strings.ToLower(mode) {
	case "", ModeAuto:
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q (expected auto, always or never)", mode)
	}

	switch strings.ToLower(os.Getenv(ThemeEnv)) {
	case "dark":
		Initialize(true)
	case "light":
		Initialize(false)
	}
	return nil
}
