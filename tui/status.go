package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sceneDisplayName derives a human-readable name from a scene ID when the
// scene carries no title. "boiler_room" -> "Boiler Room".
func sceneDisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing the
// current scene, inventory, and an open-puzzle indicator.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	sceneName := sceneDisplayName(s.Scene)
	if scene, ok := m.defs.Scenes[s.Scene]; ok && scene.Title != "" {
		sceneName = scene.Title
	}

	left := " " + sceneName
	if m.engine.PuzzleActive() {
		left += " | Puzzle: " + m.engine.Runner().Config().ID
	}

	invCount := len(s.Inventory)
	right := fmt.Sprintf("Solved: %d ", len(m.engine.SolvedPuzzles()))

	// Show inventory items if they fit, otherwise just count.
	if invCount > 0 {
		var names []string
		for _, id := range s.Inventory {
			name := id
			if item, ok := m.defs.Items[id]; ok && item.Name != "" {
				name = item.Name
			}
			names = append(names, name)
		}
		candidate := fmt.Sprintf("Inv: %s | %s", strings.Join(names, ", "), right)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | %s", invCount, right)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
