package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studiz/internal/history"
	"github.com/abhisek/studiz/internal/llm"
	"github.com/abhisek/studiz/internal/screen"
	"github.com/abhisek/studiz/internal/store"
	"github.com/abhisek/studiz/internal/study"
	"github.com/abhisek/studiz/internal/studygen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSet() studygen.QuizQuestionSet {
	return studygen.QuizQuestionSet{
		{Text: "Largest planet?", Options: []string{"Mars", "Jupiter", "Venus", "Pluto"}, CorrectIndex: 1},
		{Text: "Closest star?", Options: []string{"Sirius", "Vega", "The Sun", "Polaris"}, CorrectIndex: 2},
	}
}

// readyScreen returns a QuizScreen already holding a running session.
func readyScreen(t *testing.T) *QuizScreen {
	t.Helper()
	s := New(nil, nil)
	s.topic = "astronomy"
	scr, _ := s.Update(quizReadyMsg{Set: testSet()})
	qs := scr.(*QuizScreen)
	if qs.phase != phaseSession {
		t.Fatalf("phase = %d, want phaseSession", qs.phase)
	}
	return qs
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(nil, nil)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_GenerationError(t *testing.T) {
	s := New(nil, nil)
	scr, _ := s.Update(quizReadyMsg{Err: &llm.ErrProvider{Err: errors.New("boom")}})
	qs := scr.(*QuizScreen)

	if qs.phase != phaseError {
		t.Fatalf("phase = %d, want phaseError", qs.phase)
	}
	if !strings.Contains(qs.errMsg, "boom") {
		t.Errorf("errMsg = %q, want provider message included", qs.errMsg)
	}
}

func TestQuizScreen_MalformedContentError(t *testing.T) {
	s := New(nil, nil)
	scr, _ := s.Update(quizReadyMsg{
		Err: &studygen.ErrMalformedContent{Content: "not json", Err: errors.New("invalid")},
	})
	qs := scr.(*QuizScreen)

	if qs.phase != phaseError {
		t.Fatalf("phase = %d, want phaseError", qs.phase)
	}
	if !strings.Contains(qs.errMsg, "Try again") {
		t.Errorf("errMsg = %q, want retry suggestion", qs.errMsg)
	}
}

func TestQuizScreen_SelectSchedulesAdvance(t *testing.T) {
	s := readyScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	if cmd == nil {
		t.Fatal("expected a lock timer command after answering")
	}
	if qs.sess.Phase() != study.QuizLocked {
		t.Errorf("session phase = %v, want QuizLocked", qs.sess.Phase())
	}
	if qs.sess.Score() != 1 {
		t.Errorf("score = %d, want 1 for correct answer", qs.sess.Score())
	}
}

func TestQuizScreen_InputIgnoredWhileLocked(t *testing.T) {
	s := readyScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)

	// Further answer keys must not change the recorded answer.
	scr, cmd := qs.Update(keyPress('2'))
	qs = scr.(*QuizScreen)

	if cmd != nil {
		t.Error("expected no command while locked")
	}
	if got := qs.sess.Answers()[0].SelectedIndex; got != 0 {
		t.Errorf("selected index = %d, want 0", got)
	}
}

func TestQuizScreen_LockExpiryAdvances(t *testing.T) {
	s := readyScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)
	epoch := qs.sess.Epoch()

	scr, _ = qs.Update(lockExpiredMsg{epoch: epoch})
	qs = scr.(*QuizScreen)

	if qs.sess.Position() != 1 {
		t.Errorf("position = %d, want 1 after lock expiry", qs.sess.Position())
	}
	if qs.sess.Phase() != study.QuizActive {
		t.Errorf("session phase = %v, want QuizActive", qs.sess.Phase())
	}
}

func TestQuizScreen_StaleLockExpiryIgnored(t *testing.T) {
	s := readyScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)
	epoch := qs.sess.Epoch()

	scr, _ = qs.Update(lockExpiredMsg{epoch: epoch - 1})
	qs = scr.(*QuizScreen)

	if qs.sess.Position() != 0 {
		t.Errorf("position = %d, want 0 after stale expiry", qs.sess.Position())
	}
	if qs.sess.Phase() != study.QuizLocked {
		t.Errorf("session phase = %v, want QuizLocked", qs.sess.Phase())
	}
}

func TestQuizScreen_CompletionAndRetry(t *testing.T) {
	s := readyScreen(t)

	var scr screen.Screen = s
	for i := 0; i < 2; i++ {
		scr, _ = scr.Update(keyPress('1'))
		qs := scr.(*QuizScreen)
		scr, _ = qs.Update(lockExpiredMsg{epoch: qs.sess.Epoch()})
	}

	qs := scr.(*QuizScreen)
	if qs.phase != phaseComplete {
		t.Fatalf("phase = %d, want phaseComplete", qs.phase)
	}

	// Retry restarts the same deck from the first question.
	scr, _ = qs.Update(keyPress('r'))
	qs = scr.(*QuizScreen)
	if qs.phase != phaseSession {
		t.Errorf("phase = %d, want phaseSession after retry", qs.phase)
	}
	if qs.sess.Position() != 0 || qs.sess.Score() != 0 {
		t.Errorf("position/score = %d/%d, want 0/0 after retry",
			qs.sess.Position(), qs.sess.Score())
	}
}

const validQuizReply = "```json\n[" +
	`{"question":"Largest planet?","options":["Mars","Jupiter","Venus","Pluto"],"correctAnswer":1},` +
	`{"question":"Closest star?","options":["Sirius","Vega","The Sun","Polaris"],"correctAnswer":2},` +
	`{"question":"Red planet?","options":["Mars","Jupiter","Venus","Pluto"],"correctAnswer":0},` +
	`{"question":"Ringed planet?","options":["Mars","Saturn","Venus","Pluto"],"correctAnswer":1},` +
	`{"question":"Hottest planet?","options":["Mars","Jupiter","Venus","Pluto"],"correctAnswer":2}` +
	"]\n```"

func TestQuizScreen_GenerateToFirstQuestion(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: validQuizReply})
	gen := studygen.New(provider, studygen.DefaultConfig())
	s := New(gen, nil)
	s.topic = "Photosynthesis"

	scr, _ := s.Update(s.generate("Photosynthesis")())
	s = scr.(*QuizScreen)

	if s.phase != phaseSession {
		t.Fatalf("phase = %d, want phaseSession", s.phase)
	}
	if s.sess.Position() != 0 || s.sess.Score() != 0 {
		t.Errorf("position/score = %d/%d, want 0/0", s.sess.Position(), s.sess.Score())
	}
	if s.sess.Len() != 5 {
		t.Errorf("len = %d, want 5", s.sess.Len())
	}
}

func TestQuizScreen_EmptyArrayLeavesNoHistory(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "```json\n[]\n```"})
	gen := studygen.New(provider, studygen.DefaultConfig())
	hist := history.New(store.NewMemKV())
	s := New(gen, hist)
	s.topic = "anything"

	scr, _ := s.Update(s.generate("anything")())
	s = scr.(*QuizScreen)

	if s.phase != phaseError {
		t.Fatalf("phase = %d, want phaseError", s.phase)
	}
	entries, err := hist.List(context.Background())
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("history entries = %d, want 0 after malformed reply", len(entries))
	}
}

func TestQuizScreen_RetryAfterProviderError(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue: first call fails
	gen := studygen.New(provider, studygen.DefaultConfig())
	s := New(gen, nil)
	s.topic = "astronomy"

	scr, _ := s.Update(s.generate("astronomy")())
	s = scr.(*QuizScreen)
	if s.phase != phaseError {
		t.Fatalf("phase = %d, want phaseError after provider failure", s.phase)
	}

	provider.AddResponse(llm.MockResponse{Text: validQuizReply})
	scr, _ = s.Update(s.generate("astronomy")())
	s = scr.(*QuizScreen)
	if s.phase != phaseSession {
		t.Fatalf("phase = %d, want phaseSession after retry", s.phase)
	}
	if provider.CallCount() != 2 {
		t.Errorf("provider calls = %d, want 2", provider.CallCount())
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := readyScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty session view")
	}

	s.phase = phaseError
	s.errMsg = "test"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}
