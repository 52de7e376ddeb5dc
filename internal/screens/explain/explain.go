package explain

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/export"
	"github.com/abhisek/studiz/internal/history"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/studygen"
	"github.com/abhisek/studiz/internal/ui/components"
	"github.com/abhisek/studiz/internal/ui/layout"
	"github.com/abhisek/studiz/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseResult
	phaseError
)

type resultMsg struct {
	Content string
	Err     error
}

type spinnerTickMsg time.Time

// ExplainScreen asks for a concept and displays the generated
// explanation.
type ExplainScreen struct {
	generator *studygen.Generator
	hist      *history.Store

	phase    phase
	input    components.TextInput
	topic    string
	content  string
	errMsg   string
	spinner  int
	scroll   int
	saved    string
	inFlight bool
}

var _ screen.Screen = (*ExplainScreen)(nil)
var _ screen.KeyHintProvider = (*ExplainScreen)(nil)

// New creates a new ExplainScreen.
func New(generator *studygen.Generator, hist *history.Store) *ExplainScreen {
	return &ExplainScreen{
		generator: generator,
		hist:      hist,
		input:     components.NewTextInput("e.g. Quantum Entanglement, The French Revolution...", 120),
	}
}

func (s *ExplainScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ExplainScreen) Title() string {
	return "Explain"
}

func (s *ExplainScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Explain"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "S", Description: "Save transcript"},
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *ExplainScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		s.inFlight = false
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = studygen.FailureMessage(msg.Err)
			return s, nil
		}
		s.phase = phaseResult
		s.content = msg.Content
		s.scroll = 0
		return s, nil

	case spinnerTickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExplainScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseInput:
		if key == "enter" {
			topic := strings.TrimSpace(s.input.Value())
			if topic == "" || s.inFlight {
				return s, nil
			}
			s.topic = topic
			s.phase = phaseLoading
			s.inFlight = true
			return s, tea.Batch(s.generate(topic), spinnerTick())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseResult:
		switch key {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "s", "S":
			s.saved = s.saveTranscript()
		case "n", "N":
			s.phase = phaseInput
			s.content = ""
			s.saved = ""
			return s, s.input.Reset()
		}
		return s, nil

	case phaseError:
		if key == "enter" || key == "n" {
			s.phase = phaseInput
			s.errMsg = ""
			return s, s.input.Reset()
		}
	}
	return s, nil
}

// generate runs the LLM call off the UI loop and records history on
// success.
func (s *ExplainScreen) generate(topic string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		content, err := s.generator.Explain(ctx, topic)
		if err != nil {
			return resultMsg{Err: err}
		}
		if s.hist != nil {
			_, _ = s.hist.Append(ctx, studygen.TaskExplain, topic, content)
		}
		return resultMsg{Content: content}
	}
}

func (s *ExplainScreen) saveTranscript() string {
	name := fmt.Sprintf("explanation-%s.txt", export.Slug(s.topic))
	transcript := export.ExplainTranscript(s.topic, s.content)
	if err := os.WriteFile(name, []byte(transcript), 0o644); err != nil {
		return "save failed: " + err.Error()
	}
	return "saved " + name
}

func (s *ExplainScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return components.RenderLoading(width, height, s.spinner, "Thinking...")
	case phaseError:
		return components.RenderError(width, height, s.errMsg)
	case phaseResult:
		return s.renderResult(width, height)
	default:
		return components.RenderPrompt(width, height,
			"Concept Explainer",
			"Stuck on a tough topic? It gets broken down for you.",
			s.input.View())
	}
}

func (s *ExplainScreen) renderResult(width, height int) string {
	header := theme.Title.Width(width).Render(s.topic)

	lines := strings.Split(s.content, "\n")
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		Render(strings.Join(lines[s.scroll:end], "\n"))

	footer := ""
	if s.saved != "" {
		footer = theme.Hint.Render("  " + s.saved)
	}

	return header + "\n\n" + body + "\n" + footer
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
