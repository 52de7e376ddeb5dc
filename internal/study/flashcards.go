package study

import (
	"fmt"

	"github.com/abhisek/studiz/internal/studygen"
)

// FlashcardSession drives one traversal of a flashcard deck.
// Navigation is circular; moving in either direction shows the front
// of the new card.
type FlashcardSession struct {
	deck     studygen.FlashcardDeck
	position int
	flipped  bool
}

// NewFlashcardSession starts a session over a validated deck, showing
// the front of the first card.
func NewFlashcardSession(deck studygen.FlashcardDeck) (*FlashcardSession, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("empty deck")
	}
	return &FlashcardSession{deck: deck}, nil
}

// Flip toggles between the front and back of the current card.
func (s *FlashcardSession) Flip() {
	s.flipped = !s.flipped
}

// Next moves to the following card, wrapping from the last card to
// the first. The new card always shows its front.
func (s *FlashcardSession) Next() {
	s.position = (s.position + 1) % len(s.deck)
	s.flipped = false
}

// Prev moves to the preceding card, wrapping from the first card to
// the last. The new card always shows its front.
func (s *FlashcardSession) Prev() {
	s.position = (s.position - 1 + len(s.deck)) % len(s.deck)
	s.flipped = false
}

// JumpTo moves directly to the card at index, front showing.
// Returns an error when index does not name a card.
func (s *FlashcardSession) JumpTo(index int) error {
	if index < 0 || index >= len(s.deck) {
		return fmt.Errorf("index %d out of range", index)
	}
	s.position = index
	s.flipped = false
	return nil
}

// Reset returns to the first card, front showing.
func (s *FlashcardSession) Reset() {
	s.position = 0
	s.flipped = false
}

// Current returns the card being displayed.
func (s *FlashcardSession) Current() studygen.Flashcard {
	return s.deck[s.position]
}

// Position returns the zero-based index of the current card.
func (s *FlashcardSession) Position() int { return s.position }

// Len returns the number of cards in the deck.
func (s *FlashcardSession) Len() int { return len(s.deck) }

// Flipped reports whether the back of the current card is showing.
func (s *FlashcardSession) Flipped() bool { return s.flipped }

// Deck returns the underlying deck.
func (s *FlashcardSession) Deck() studygen.FlashcardDeck { return s.deck }
