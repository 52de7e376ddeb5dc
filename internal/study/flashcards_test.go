package study

import (
	"testing"

	"github.com/abhisek/studiz/internal/studygen"
)

func testCards(n int) studygen.FlashcardDeck {
	deck := make(studygen.FlashcardDeck, n)
	for i := range deck {
		deck[i] = studygen.Flashcard{Front: "front", Back: "back"}
	}
	return deck
}

func TestNewFlashcardSession_EmptyDeck(t *testing.T) {
	if _, err := NewFlashcardSession(nil); err == nil {
		t.Fatal("expected error for empty deck")
	}
}

func TestFlashcardFlip(t *testing.T) {
	s, err := NewFlashcardSession(testCards(3))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if s.Flipped() {
		t.Fatal("new session should show the front")
	}
	s.Flip()
	if !s.Flipped() {
		t.Error("flip should show the back")
	}
	s.Flip()
	if s.Flipped() {
		t.Error("second flip should show the front again")
	}
}

func TestFlashcardCircularNavigation(t *testing.T) {
	s, _ := NewFlashcardSession(testCards(3))

	// Forward past the end wraps to 0.
	s.Next()
	s.Next()
	if s.Position() != 2 {
		t.Fatalf("position = %d, want 2", s.Position())
	}
	s.Next()
	if s.Position() != 0 {
		t.Errorf("next from last: position = %d, want 0", s.Position())
	}

	// Backward from 0 wraps to the last card.
	s.Prev()
	if s.Position() != 2 {
		t.Errorf("prev from first: position = %d, want 2", s.Position())
	}
}

func TestFlashcardNavigationResetsFlip(t *testing.T) {
	s, _ := NewFlashcardSession(testCards(2))

	s.Flip()
	s.Next()
	if s.Flipped() {
		t.Error("next should reset flip")
	}

	s.Flip()
	s.Prev()
	if s.Flipped() {
		t.Error("prev should reset flip")
	}
}

func TestFlashcardSingleCard(t *testing.T) {
	s, _ := NewFlashcardSession(testCards(1))

	s.Flip()
	s.Next()
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	if s.Flipped() {
		t.Error("wrap-around on a single card should still reset flip")
	}
	s.Prev()
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
}

func TestFlashcardJumpTo(t *testing.T) {
	s, _ := NewFlashcardSession(testCards(4))

	s.Flip()
	if err := s.JumpTo(3); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if s.Position() != 3 {
		t.Errorf("position = %d, want 3", s.Position())
	}
	if s.Flipped() {
		t.Error("jump should reset flip")
	}

	if err := s.JumpTo(4); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if err := s.JumpTo(-1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestFlashcardReset(t *testing.T) {
	s, _ := NewFlashcardSession(testCards(3))

	s.Next()
	s.Flip()
	s.Reset()
	if s.Position() != 0 || s.Flipped() {
		t.Error("reset did not return to first card front")
	}
}
