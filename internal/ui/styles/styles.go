// Package styles centralizes color tokens and shared lipgloss styles for the
// quill UI. Components reference these tokens instead of hardcoding colors so
// the palette stays consistent across the prompt, status bar, and overlays.
package styles

import "github.com/charmbracelet/lipgloss"

// Text colors.
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders
	TextErrorColor       = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#E74C3C"}
)

// Mode indicator colors, one per editing mode.
var (
	NormalModeColor = lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#3498DB"}
	InsertModeColor = lipgloss.AdaptiveColor{Light: "#27AE60", Dark: "#2ECC71"}
	VisualModeColor = lipgloss.AdaptiveColor{Light: "#8E44AD", Dark: "#9B59B6"}
)

// Overlay colors for the help box.
var (
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#555555"}
)

// StatusBarStyle renders the one-line footer under the prompt.
var StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

// ModeIndicator returns a styled "[NORMAL]"-shaped tag for the given mode
// name using the mode's color.
func ModeIndicator(name string, color lipgloss.AdaptiveColor) string {
	return lipgloss.NewStyle().Foreground(color).Render("[" + name + "]")
}
