// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/wca/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple, for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue, for phrases and file paths.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for phrases, file paths and config keys.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	hintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// applyColorScheme pins the background lipgloss assumes when the scheme is
// not auto.
func applyColorScheme(scheme config.ColorScheme) {
	switch scheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

// glamourStyle returns the glamour style for issue guides.
func glamourStyle(scheme config.ColorScheme) string {
	if scheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
