package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerFrame returns the spinner glyph for an animation tick.
func SpinnerFrame(i int) string {
	return spinnerFrames[i%len(spinnerFrames)]
}

// RenderLoading centers an animated "working" message.
func RenderLoading(width, height, frame int, label string) string {
	msg := lipgloss.NewStyle().Foreground(theme.Primary).Render(SpinnerFrame(frame) + " " + label)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderError centers an error panel with a retry hint.
func RenderError(width, height int, errMsg string) string {
	body := theme.Incorrect.Render("Something went wrong") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(width-20).Render(errMsg) + "\n\n" +
		theme.Hint.Render("Enter to try again, Esc to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// RenderPrompt centers a titled input prompt.
func RenderPrompt(width, height int, title, subtitle, inputView string) string {
	content := theme.Title.Render(title) + "\n" +
		theme.Subtitle.Render(subtitle) + "\n\n" +
		inputView
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
