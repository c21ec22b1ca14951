package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			assert.Equal(t, tt.expected, lipgloss.HasDarkBackground())
		})
	}
}

func TestConfigure(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)

	assert.NoError(t, Configure(ModeNever))
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	assert.NoError(t, Configure("ALWAYS"))
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	assert.ErrorContains(t, Configure("sometimes"), `unknown color mode "sometimes"`)
}

func TestConfigure_Theme(t *testing.T) {
	t.Setenv(ThemeEnv, "light")
	assert.NoError(t, Configure(ModeAuto))
	assert.False(t, lipgloss.HasDarkBackground())

	t.Setenv(ThemeEnv, "dark")
	assert.NoError(t, Configure(ModeAuto))
	assert.True(t, lipgloss.HasDarkBackground())
}
