package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleSceneDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouNotice = lipgloss.NewStyle().
			Bold(true)

	styleSolved = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	stylePuzzle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	styleBoard = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindSceneDesc lineKind = iota
	kindYouNotice
	kindSolved
	kindPuzzle
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You notice:"):
		return kindYouNotice
	case strings.HasPrefix(line, "Solved"):
		return kindSolved
	case strings.HasPrefix(line, "A puzzle blocks"),
		strings.HasPrefix(line, "You step back"):
		return kindPuzzle
	case strings.HasPrefix(line, "You don't see"),
		strings.HasPrefix(line, "You don't have"),
		strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "That doesn't work"),
		strings.HasPrefix(line, "Nothing happens"):
		return kindError
	default:
		return kindSceneDesc
	}
}

// styledYouNotice renders "You notice: a, b." with the hotspot names bold.
func styledYouNotice(line string) string {
	const prefix = "You notice: "
	if !strings.HasPrefix(line, prefix) {
		return styleSceneDesc.Render(line)
	}
	return styleSceneDesc.Render(prefix) + styleYouNotice.Render(line[len(prefix):])
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
