// Package color configures how refery styles its terminal output.
//
// Styles throughout refery are built with lipgloss adaptive colors, which
// pick a light or dark variant depending on the terminal background, and are
// downgraded to the color profile of the terminal. This package decides both
// once at startup:
//
//   - the color mode (auto, always, never) chooses the color profile; auto
//     leaves detection to lipgloss, which honors NO_COLOR and non-terminal
//     outputs
//   - REFERY_THEME=dark or REFERY_THEME=light forces the background variant
//
// # Usage Example
//
//	if err := color.Configure("auto"); err != nil {
//	    return err
//	}
package color
