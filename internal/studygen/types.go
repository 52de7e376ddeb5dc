package studygen

// TaskKind identifies what kind of study material a request produces.
type TaskKind string

const (
	TaskExplain   TaskKind = "explain"
	TaskSummarize TaskKind = "summarize"
	TaskQuiz      TaskKind = "quiz"
	TaskFlashcard TaskKind = "flashcard"
)

// QuizQuestion is a single validated multiple-choice question.
type QuizQuestion struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Options holds exactly 4 answer choices in display order.
	Options []string

	// CorrectIndex is the index into Options of the right answer (0-3).
	CorrectIndex int
}

// QuizQuestionSet is an ordered, non-empty quiz. Element order matches
// the order the model emitted.
type QuizQuestionSet []QuizQuestion

// Flashcard is a single front/back study card.
type Flashcard struct {
	// Front is the question or term. Kept short by prompt guidance,
	// not enforced at validation time.
	Front string

	// Back is the answer or definition.
	Back string
}

// FlashcardDeck is an ordered, non-empty set of cards.
type FlashcardDeck []Flashcard

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended generation defaults. Structured
// tasks (quiz, flashcards) need headroom for the full JSON array.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
