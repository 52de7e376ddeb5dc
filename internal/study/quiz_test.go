package study

import (
	"testing"

	"github.com/abhisek/studiz/internal/studygen"
)

func testDeck(n int) studygen.QuizQuestionSet {
	deck := make(studygen.QuizQuestionSet, n)
	for i := range deck {
		deck[i] = studygen.QuizQuestion{
			Text:         "Question",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
		}
	}
	return deck
}

func TestNewQuizSession_EmptyDeck(t *testing.T) {
	if _, err := NewQuizSession(nil); err == nil {
		t.Fatal("expected error for empty deck")
	}
}

func TestQuizFullTraversal(t *testing.T) {
	deck := testDeck(3)
	s, err := NewQuizSession(deck)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for i := 0; i < 3; i++ {
		if s.Phase() != QuizActive {
			t.Fatalf("question %d: phase = %v, want QuizActive", i, s.Phase())
		}
		if s.Position() != i {
			t.Fatalf("position = %d, want %d", s.Position(), i)
		}

		// Answer correctly.
		epoch, err := s.SelectAnswer(deck[i].CorrectIndex)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if s.Phase() != QuizLocked {
			t.Fatalf("phase after select = %v, want QuizLocked", s.Phase())
		}
		if s.LockedChoice() != deck[i].CorrectIndex {
			t.Errorf("lockedChoice = %d, want %d", s.LockedChoice(), deck[i].CorrectIndex)
		}

		if !s.Advance(epoch) {
			t.Fatal("advance with current epoch should apply")
		}
	}

	if s.Phase() != QuizComplete {
		t.Fatalf("phase = %v, want QuizComplete", s.Phase())
	}
	if s.Score() != 3 {
		t.Errorf("score = %d, want 3", s.Score())
	}
	if len(s.Answers()) != s.Len() {
		t.Errorf("answers = %d, want %d", len(s.Answers()), s.Len())
	}
}

func TestQuizScoring(t *testing.T) {
	deck := testDeck(4)
	s, _ := NewQuizSession(deck)

	// Alternate right and wrong answers.
	for i := 0; i < 4; i++ {
		choice := deck[i].CorrectIndex
		if i%2 == 1 {
			choice = (choice + 1) % 4
		}
		epoch, err := s.SelectAnswer(choice)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		s.Advance(epoch)
	}

	if s.Score() != 2 {
		t.Errorf("score = %d, want 2", s.Score())
	}
	if s.Score() > s.Len() {
		t.Error("score exceeds deck length")
	}

	correct := 0
	for _, a := range s.Answers() {
		if a.Correct {
			correct++
		}
	}
	if correct != s.Score() {
		t.Errorf("score = %d but %d records marked correct", s.Score(), correct)
	}
}

func TestQuizSelectAnswer_Idempotent(t *testing.T) {
	deck := testDeck(2)
	s, _ := NewQuizSession(deck)

	epoch1, err := s.SelectAnswer(deck[0].CorrectIndex)
	if err != nil {
		t.Fatalf("first select: %v", err)
	}
	scoreAfterFirst := s.Score()

	// Second select before the lock interval elapses changes nothing.
	wrong := (deck[0].CorrectIndex + 1) % 4
	epoch2, err := s.SelectAnswer(wrong)
	if err != nil {
		t.Fatalf("second select: %v", err)
	}
	if epoch2 != epoch1 {
		t.Error("locked re-select must not bump the epoch")
	}
	if s.Score() != scoreAfterFirst {
		t.Errorf("score changed: %d -> %d", scoreAfterFirst, s.Score())
	}
	if len(s.Answers()) != 1 {
		t.Fatalf("answers = %d, want 1", len(s.Answers()))
	}
	if s.Answers()[0].SelectedIndex != deck[0].CorrectIndex {
		t.Error("first selection did not stand")
	}
	if s.LockedChoice() != deck[0].CorrectIndex {
		t.Error("lockedChoice changed on re-select")
	}
}

func TestQuizSelectAnswer_OutOfRange(t *testing.T) {
	s, _ := NewQuizSession(testDeck(1))

	for _, choice := range []int{-1, 4, 99} {
		if _, err := s.SelectAnswer(choice); err == nil {
			t.Errorf("SelectAnswer(%d): expected error", choice)
		}
	}
	if s.Phase() != QuizActive {
		t.Error("rejected answer must not lock the question")
	}
	if len(s.Answers()) != 0 {
		t.Error("rejected answer must not be recorded")
	}
}

func TestQuizAdvance_StaleEpochIgnored(t *testing.T) {
	deck := testDeck(2)
	s, _ := NewQuizSession(deck)

	epoch, _ := s.SelectAnswer(0)
	s.Restart()

	// The timer from before the restart fires late.
	if s.Advance(epoch) {
		t.Error("stale advance must be dropped after restart")
	}
	if s.Position() != 0 || s.Phase() != QuizActive {
		t.Error("stale advance mutated restarted session")
	}
}

func TestQuizAdvance_RequiresLock(t *testing.T) {
	s, _ := NewQuizSession(testDeck(2))

	if s.Advance(0) {
		t.Error("advance without a locked answer should no-op")
	}

	epoch, _ := s.SelectAnswer(0)
	if !s.Advance(epoch) {
		t.Fatal("advance should apply")
	}
	// Double fire of the same timer.
	if s.Advance(epoch) {
		t.Error("second advance with the same epoch should no-op")
	}
}

func TestQuizRestart(t *testing.T) {
	deck := testDeck(2)
	s, _ := NewQuizSession(deck)

	for i := 0; i < 2; i++ {
		epoch, _ := s.SelectAnswer(deck[i].CorrectIndex)
		s.Advance(epoch)
	}
	if s.Phase() != QuizComplete {
		t.Fatal("expected complete")
	}

	s.Restart()
	if s.Phase() != QuizActive || s.Position() != 0 || s.Score() != 0 {
		t.Error("restart did not reset state")
	}
	if len(s.Answers()) != 0 {
		t.Error("restart did not clear answers")
	}
}

func TestQuizSingleQuestion(t *testing.T) {
	deck := testDeck(1)
	s, _ := NewQuizSession(deck)

	epoch, err := s.SelectAnswer(deck[0].CorrectIndex)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !s.Advance(epoch) {
		t.Fatal("advance should apply")
	}
	if s.Phase() != QuizComplete {
		t.Errorf("phase = %v, want QuizComplete", s.Phase())
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}
