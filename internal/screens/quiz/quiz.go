package quiz

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
	phaseComplete
	phaseError
)

// quizReadyMsg is sent when the question set has been generated and
// validated.
type quizReadyMsg struct {
	Set studygen.QuizQuestionSet
	Err error
}

// lockExpiredMsg fires when the feedback lock interval ends. Epoch
// ties it to the selection that scheduled it; the session drops it if
// the epoch is stale.
type lockExpiredMsg struct {
	epoch int
}

type spinnerTickMsg time.Time

// QuizScreen drives topic entry, generation and the quiz session.
type QuizScreen struct {
	generator *studygen.Generator
	hist      *history.Store

	phase    phase
	input    components.TextInput
	topic    string
	sess     *study.QuizSession
	choice   components.MultiChoice
	errMsg   string
	spinner  int
	saved    string
	recorded bool
	inFlight bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(generator *studygen.Generator, hist *history.Store) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		hist:      hist,
		input:     components.NewTextInput("e.g. The Solar System, World War II...", 120),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSession:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter/1-4", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseComplete:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry quiz"},
			{Key: "S", Description: "Save results"},
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case lockExpiredMsg:
		return s.handleLockExpired(msg)

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

func (s *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	s.inFlight = false
	if msg.Err != nil {
		s.phase = phaseError
		s.errMsg = studygen.FailureMessage(msg.Err)
		return s, nil
	}

	sess, err := study.NewQuizSession(msg.Set)
	if err != nil {
		s.phase = phaseError
		s.errMsg = err.Error()
		return s, nil
	}
	s.sess = sess
	s.recorded = false
	s.phase = phaseSession
	s.showCurrentQuestion()
	return s, nil
}

func (s *QuizScreen) handleLockExpired(msg lockExpiredMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil || !s.sess.Advance(msg.epoch) {
		return s, nil
	}

	if s.sess.Phase() == study.QuizComplete {
		s.phase = phaseComplete
		return s, s.recordHistory()
	}
	s.showCurrentQuestion()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
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
		return s.handleSessionKey(key)

	case phaseComplete:
		switch key {
		case "r", "R":
			s.sess.Restart()
			s.recorded = false // a retried run concludes on its own
			s.saved = ""
			s.phase = phaseSession
			s.showCurrentQuestion()
		case "s", "S":
			s.saved = s.saveTranscript()
		case "n", "N":
			s.reset()
			return s, s.input.Reset()
		}
		return s, nil

	case phaseError:
		if key == "enter" || key == "n" {
			s.reset()
			return s, s.input.Reset()
		}
	}
	return s, nil
}

func (s *QuizScreen) handleSessionKey(key string) (screen.Screen, tea.Cmd) {
	// While locked, input is ignored until the reveal ends.
	if s.sess.Phase() != study.QuizActive {
		return s, nil
	}

	switch key {
	case "up", "k":
		s.choice.CursorUp()
	case "down", "j":
		s.choice.CursorDown()
	case "enter":
		return s, s.selectAnswer(s.choice.Cursor)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.sess.Current().Options) {
			s.choice.Cursor = idx
			return s, s.selectAnswer(idx)
		}
	}
	return s, nil
}

// selectAnswer locks the choice in the session and schedules the
// advance after the lock interval.
func (s *QuizScreen) selectAnswer(idx int) tea.Cmd {
	epoch, err := s.sess.SelectAnswer(idx)
	if err != nil {
		return nil
	}
	s.choice.Lock(idx)
	return tea.Tick(study.LockInterval, func(time.Time) tea.Msg {
		return lockExpiredMsg{epoch: epoch}
	})
}

func (s *QuizScreen) showCurrentQuestion() {
	q := s.sess.Current()
	s.choice = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
}

func (s *QuizScreen) generate(topic string) tea.Cmd {
	return func() tea.Msg {
		set, err := s.generator.GenerateQuiz(context.Background(), topic)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		return quizReadyMsg{Set: set}
	}
}

// recordHistory appends the finished quiz once, even across retries.
func (s *QuizScreen) recordHistory() tea.Cmd {
	if s.recorded || s.hist == nil {
		return nil
	}
	s.recorded = true
	topic := s.topic
	summary := fmt.Sprintf("Scored %d/%d", s.sess.Score(), s.sess.Len())
	return func() tea.Msg {
		_, _ = s.hist.Append(context.Background(), studygen.TaskQuiz, topic, summary)
		return nil
	}
}

func (s *QuizScreen) saveTranscript() string {
	name := fmt.Sprintf("quiz-%s.txt", export.Slug(s.topic))
	transcript := export.QuizTranscript(s.topic, s.sess)
	if err := os.WriteFile(name, []byte(transcript), 0o644); err != nil {
		return "save failed: " + err.Error()
	}
	return "saved " + name
}

func (s *QuizScreen) reset() {
	s.phase = phaseInput
	s.sess = nil
	s.errMsg = ""
	s.saved = ""
	s.recorded = false
}

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return components.RenderLoading(width, height, s.spinner, "Generating quiz...")
	case phaseError:
		return components.RenderError(width, height, s.errMsg)
	case phaseSession:
		return s.renderSession(width, height)
	case phaseComplete:
		return s.renderComplete(width, height)
	default:
		return components.RenderPrompt(width, height,
			"Quiz Generator",
			"Test your knowledge on any topic.",
			s.input.View())
	}
}

func (s *QuizScreen) renderSession(width, height int) string {
	progress := components.StepProgress(s.sess.Position()+1, s.sess.Len(), 40).View()
	score := theme.Hint.Render(fmt.Sprintf("Score: %d", s.sess.Score()))

	content := progress + "\n" + score + "\n\n" + s.choice.View()

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderComplete(width, height int) string {
	score := s.sess.Score()
	total := s.sess.Len()

	verdict := "Keep practicing!"
	switch {
	case score == total:
		verdict = "Perfect score!"
	case score*2 >= total:
		verdict = "Nice work!"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz Complete") + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("%d / %d", score, total)) + "\n")
	b.WriteString(theme.Subtitle.Render(verdict) + "\n\n")

	for _, a := range s.sess.Answers() {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s Q%d\n", mark, a.QuestionIndex+1))
	}

	if s.saved != "" {
		b.WriteString("\n" + theme.Hint.Render(s.saved))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
