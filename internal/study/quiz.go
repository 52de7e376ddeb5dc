// Package study holds the pure session state machines for interactive
// quiz and flashcard traversal. The machines know nothing about the
// terminal; the UI layer drives them and schedules their timers.
package study

import (
	"fmt"
	"time"

	"github.com/abhisek/studiz/internal/studygen"
)

// LockInterval is how long a quiz question stays locked showing
// feedback before advancing to the next question.
const LockInterval = 1500 * time.Millisecond

// QuizPhase represents the current phase of a quiz session.
type QuizPhase int

const (
	QuizActive   QuizPhase = iota // Awaiting an answer for the current question
	QuizLocked                    // Answer locked, feedback showing, advance pending
	QuizComplete                  // All questions answered
)

// AnswerRecord captures one answered question.
type AnswerRecord struct {
	QuestionIndex int
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
}

// QuizSession drives one traversal of a quiz from first question to
// completion. It is a plain state machine: SelectAnswer locks in a
// choice, and Advance (driven by an external timer) moves on.
//
// Epoch guards the deferred advance: every lock and every restart bumps
// it, so a timer scheduled for a stale epoch is ignored rather than
// advancing a question it no longer belongs to.
type QuizSession struct {
	deck     studygen.QuizQuestionSet
	position int
	score    int
	answers  []AnswerRecord
	locked   int // selected option while QuizLocked, -1 otherwise
	phase    QuizPhase
	epoch    int
}

// NewQuizSession starts a session over a validated question set.
func NewQuizSession(deck studygen.QuizQuestionSet) (*QuizSession, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("empty question set")
	}
	return &QuizSession{
		deck:    deck,
		answers: make([]AnswerRecord, 0, len(deck)),
		locked:  -1,
		phase:   QuizActive,
	}, nil
}

// SelectAnswer locks in choice for the current question and returns
// the epoch the caller should schedule Advance with. A second call
// while the question is locked is a no-op: the first selection stands.
// Returns an error when choice does not index a real option.
func (s *QuizSession) SelectAnswer(choice int) (int, error) {
	q := s.deck[s.position]
	if choice < 0 || choice >= len(q.Options) {
		return s.epoch, fmt.Errorf("choice %d out of range", choice)
	}
	if s.phase != QuizActive {
		return s.epoch, nil
	}

	correct := choice == q.CorrectIndex
	s.answers = append(s.answers, AnswerRecord{
		QuestionIndex: s.position,
		SelectedIndex: choice,
		CorrectIndex:  q.CorrectIndex,
		Correct:       correct,
	})
	if correct {
		s.score++
	}

	s.locked = choice
	s.phase = QuizLocked
	s.epoch++
	return s.epoch, nil
}

// Advance applies the deferred transition after the lock interval.
// It only acts when the session is still locked and epoch matches the
// value SelectAnswer returned; a stale epoch means the session moved
// on (restart, new selection) and the transition is dropped.
// Returns true when the session state changed.
func (s *QuizSession) Advance(epoch int) bool {
	if s.phase != QuizLocked || epoch != s.epoch {
		return false
	}

	s.locked = -1
	if s.position+1 >= len(s.deck) {
		s.phase = QuizComplete
	} else {
		s.position++
		s.phase = QuizActive
	}
	return true
}

// Restart rewinds the session to the first question with a clean
// score. Any pending Advance is invalidated by the epoch bump.
func (s *QuizSession) Restart() {
	s.position = 0
	s.score = 0
	s.answers = s.answers[:0]
	s.locked = -1
	s.phase = QuizActive
	s.epoch++
}

// Phase returns the current phase.
func (s *QuizSession) Phase() QuizPhase { return s.phase }

// Current returns the question being displayed. During QuizComplete
// it returns the last question.
func (s *QuizSession) Current() studygen.QuizQuestion {
	return s.deck[s.position]
}

// Position returns the zero-based index of the current question.
func (s *QuizSession) Position() int { return s.position }

// Len returns the number of questions in the deck.
func (s *QuizSession) Len() int { return len(s.deck) }

// Score returns the number of correct answers so far.
func (s *QuizSession) Score() int { return s.score }

// LockedChoice returns the selected option while QuizLocked, -1 otherwise.
func (s *QuizSession) LockedChoice() int { return s.locked }

// Answers returns the per-question records in answer order.
func (s *QuizSession) Answers() []AnswerRecord { return s.answers }

// Deck returns the underlying question set.
func (s *QuizSession) Deck() studygen.QuizQuestionSet { return s.deck }

// Epoch returns the current lock epoch. Timers scheduled with an
// older epoch are stale.
func (s *QuizSession) Epoch() int { return s.epoch }
