package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/ui/theme"
)

// Flashcard renders one side of a study card as a bordered box.
// The back side gets the accent border so a flip is visually obvious.
func Flashcard(text string, back bool, width int) string {
	borderColor := theme.Border
	label := "FRONT"
	if back {
		borderColor = theme.Accent
		label = "BACK"
	}

	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(inner).
		Align(lipgloss.Center).
		Render(text)

	tag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Width(inner).
		Render(label)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Render(tag + "\n\n" + body)
}
