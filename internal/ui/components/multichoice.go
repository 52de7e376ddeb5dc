package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/ui/theme"
)

// MultiChoice renders a quiz question with its options. The quiz
// screen owns the state machine; this component only draws. While
// locked it highlights the correct option green and a wrong chosen
// option red, mirroring the reveal the lock interval is for.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Cursor       int
	Locked       bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice view for a question.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       0,
		ChosenIndex:  -1,
	}
}

// CursorUp moves the cursor up. No-op while locked.
func (m *MultiChoice) CursorUp() {
	if !m.Locked && m.Cursor > 0 {
		m.Cursor--
	}
}

// CursorDown moves the cursor down. No-op while locked.
func (m *MultiChoice) CursorDown() {
	if !m.Locked && m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// Lock freezes the component showing the reveal for chosen.
func (m *MultiChoice) Lock(chosen int) {
	m.Locked = true
	m.ChosenIndex = chosen
}

// View renders the question and options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Locked {
			switch {
			case i == m.CorrectIndex:
				s += theme.Correct.Render(line + "  ✓")
			case i == m.ChosenIndex:
				s += theme.Incorrect.Render(line + "  ✗")
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
			}
		} else {
			if i == m.Cursor {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line)
			}
		}
		s += "\n"
	}

	return s
}

// IsCorrect returns true if the locked choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Locked && m.ChosenIndex == m.CorrectIndex
}
