package summarize

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

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

// maxTopicLen bounds the history topic derived from pasted text.
const maxTopicLen = 60

// SummarizeScreen takes a block of text and displays its summary.
type SummarizeScreen struct {
	generator *studygen.Generator
	hist      *history.Store

	phase    phase
	input    components.TextInput
	source   string
	content  string
	errMsg   string
	spinner  int
	scroll   int
	inFlight bool
}

var _ screen.Screen = (*SummarizeScreen)(nil)
var _ screen.KeyHintProvider = (*SummarizeScreen)(nil)

// New creates a new SummarizeScreen.
func New(generator *studygen.Generator, hist *history.Store) *SummarizeScreen {
	return &SummarizeScreen{
		generator: generator,
		hist:      hist,
		input:     components.NewTextInput("Paste the text to summarize...", 4000),
	}
}

func (s *SummarizeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SummarizeScreen) Title() string {
	return "Summarize"
}

func (s *SummarizeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summarize"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "N", Description: "New text"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SummarizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

func (s *SummarizeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseInput:
		if key == "enter" {
			text := strings.TrimSpace(s.input.Value())
			if text == "" || s.inFlight {
				return s, nil
			}
			s.source = text
			s.phase = phaseLoading
			s.inFlight = true
			return s, tea.Batch(s.generate(text), spinnerTick())
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
		case "n", "N":
			s.phase = phaseInput
			s.content = ""
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

func (s *SummarizeScreen) generate(text string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		content, err := s.generator.Summarize(ctx, text)
		if err != nil {
			return resultMsg{Err: err}
		}
		if s.hist != nil {
			_, _ = s.hist.Append(ctx, studygen.TaskSummarize, topicFrom(text), content)
		}
		return resultMsg{Content: content}
	}
}

// topicFrom derives a short history topic from the pasted text.
func topicFrom(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxTopicLen {
		text = text[:maxTopicLen] + "…"
	}
	return text
}

func (s *SummarizeScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return components.RenderLoading(width, height, s.spinner, "Summarizing...")
	case phaseError:
		return components.RenderError(width, height, s.errMsg)
	case phaseResult:
		return s.renderResult(width, height)
	default:
		return components.RenderPrompt(width, height,
			"Note Summarizer",
			"Condense long notes into the key takeaways.",
			s.input.View())
	}
}

func (s *SummarizeScreen) renderResult(width, height int) string {
	header := theme.Title.Width(width).Render("Summary")

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

	return header + "\n\n" + body
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
