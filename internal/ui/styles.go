// Package ui renders branch and tag listings for the terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dashifen/git-branch/internal/branch"
)

// Colors used for branch types
var (
	releaseColor = lipgloss.Color("212") // pink
	featureColor = lipgloss.Color("82")  // green
	bugfixColor  = lipgloss.Color("214") // orange
	unknownColor = lipgloss.Color("240") // gray
)

var typeStyles = map[branch.Type]lipgloss.Style{
	branch.TypeRelease: lipgloss.NewStyle().Foreground(releaseColor),
	branch.TypeFeature: lipgloss.NewStyle().Foreground(featureColor),
	branch.TypeBugFix:  lipgloss.NewStyle().Foreground(bugfixColor),
	branch.TypeUnknown: lipgloss.NewStyle().Foreground(unknownColor),
}

// CurrentStyle highlights the currently checked-out branch.
var CurrentStyle = lipgloss.NewStyle().Bold(true)

// TypeLabel renders a branch type, colored when color output is on.
func TypeLabel(t branch.Type, color bool) string {
	if !color {
		return t.String()
	}
	return typeStyles[t].Render(t.String())
}

// ColorEnabled reports whether stdout is a terminal that should
// receive colored output.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
