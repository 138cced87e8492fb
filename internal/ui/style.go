// Package ui provides the terminal user interface for the session watcher.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warn      lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warn:      lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#F5C542"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
	Countdown  lipgloss.Style
	Join       lipgloss.Style

	BadgeConfirmed lipgloss.Style
	BadgePending   lipgloss.Style
	BadgeCompleted lipgloss.Style
	BadgeCancelled lipgloss.Style
	BadgeExpired   lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.Copy().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Selected: base.Copy().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Unselected: base.Copy(),

		Help: base.Copy().
			Foreground(defaultColors.Subtle),

		Error: base.Copy().
			Foreground(defaultColors.Error),

		Countdown: base.Copy().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Join: base.Copy().
			Bold(true).
			Foreground(defaultColors.Special),

		BadgeConfirmed: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Special),

		BadgePending: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Warn),

		BadgeCompleted: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		BadgeCancelled: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Error),

		BadgeExpired: lipgloss.NewStyle().
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
