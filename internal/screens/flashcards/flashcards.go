package flashcards

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiz/internal/history"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/study"
	"github.com/abhisek/studiz/internal/studygen"
	"github.com/abhisek/studiz/internal/ui/components"
	"github.com/abhisek/studiz/internal/ui/layout"
	"github.com/abhisek/studiz/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseSession
	phaseError
)

// deckReadyMsg is sent when the deck has been generated and validated.
type deckReadyMsg struct {
	Deck studygen.FlashcardDeck
	Err  error
}

type spinnerTickMsg time.Time

// FlashcardScreen drives topic entry, generation and deck traversal.
type FlashcardScreen struct {
	generator *studygen.Generator
	hist      *history.Store

	phase    phase
	input    components.TextInput
	topic    string
	sess     *study.FlashcardSession
	errMsg   string
	spinner  int
	inFlight bool
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New creates a new FlashcardScreen.
func New(generator *studygen.Generator, hist *history.Store) *FlashcardScreen {
	return &FlashcardScreen{
		generator: generator,
		hist:      hist,
		input:     components.NewTextInput("e.g. Spanish verbs, Cell biology...", 120),
	}
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *FlashcardScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate deck"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSession:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "←→", Description: "Navigate"},
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckReadyMsg:
		s.inFlight = false
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = studygen.FailureMessage(msg.Err)
			return s, nil
		}
		sess, err := study.NewFlashcardSession(msg.Deck)
		if err != nil {
			s.phase = phaseError
			s.errMsg = err.Error()
			return s, nil
		}
		s.sess = sess
		s.phase = phaseSession
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

func (s *FlashcardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
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

	case phaseSession:
		switch key {
		case " ", "space", "enter":
			s.sess.Flip()
		case "right", "l":
			s.sess.Next()
		case "left", "h":
			s.sess.Prev()
		case "r", "R":
			s.sess.Reset()
		case "n", "N":
			s.phase = phaseInput
			s.sess = nil
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

// generate runs the LLM call off the UI loop. The deck is recorded in
// history as soon as generation succeeds, matching how decks are
// browsed open-endedly rather than completed.
func (s *FlashcardScreen) generate(topic string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		deck, err := s.generator.GenerateFlashcards(ctx, topic)
		if err != nil {
			return deckReadyMsg{Err: err}
		}
		if s.hist != nil {
			summary := fmt.Sprintf("%d flashcards generated", len(deck))
			_, _ = s.hist.Append(ctx, studygen.TaskFlashcard, topic, summary)
		}
		return deckReadyMsg{Deck: deck}
	}
}

func (s *FlashcardScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return components.RenderLoading(width, height, s.spinner, "Creating flashcards...")
	case phaseError:
		return components.RenderError(width, height, s.errMsg)
	case phaseSession:
		return s.renderSession(width, height)
	default:
		return components.RenderPrompt(width, height,
			"Flashcard Generator",
			"Generate flashcards on any topic for spaced repetition study.",
			s.input.View())
	}
}

func (s *FlashcardScreen) renderSession(width, height int) string {
	card := s.sess.Current()
	text := card.Front
	if s.sess.Flipped() {
		text = card.Back
	}

	cardWidth := width / 2
	if cardWidth < 40 {
		cardWidth = 40
	}

	counter := theme.Subtitle.Render(
		fmt.Sprintf("Card %d of %d", s.sess.Position()+1, s.sess.Len()))

	content := counter + "\n\n" +
		components.Flashcard(text, s.sess.Flipped(), cardWidth) + "\n\n" +
		theme.Hint.Render("space to flip, ← → to move")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
