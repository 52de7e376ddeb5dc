package studygen

import (
	"fmt"
	"strings"
)

// SystemPrompt sets the tutor persona for every model call.
const SystemPrompt = `You are StudyBuddy AI — a friendly, knowledgeable tutor. Explain concepts clearly, use simple language, real-world analogies, and format responses with Markdown (headers, bullet points, bold text).`

const (
	// QuizQuestionCount is how many questions a quiz prompt asks for.
	QuizQuestionCount = 5

	// FlashcardCount is how many cards a flashcard prompt asks for.
	FlashcardCount = 8
)

// BuildExplainPrompt returns the instruction prompt for explaining a
// concept. Returns ErrInvalidRequest when topic is blank.
func BuildExplainPrompt(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", &ErrInvalidRequest{Reason: "empty topic"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the following concept like I'm a student: %q.\n", topic)
	b.WriteString("- Use simple language.\n")
	b.WriteString("- Provide real-world analogies.\n")
	b.WriteString("- Format with Markdown (headers, bullet points).")
	return b.String(), nil
}

// BuildSummarizePrompt returns the instruction prompt for summarizing
// a block of text. Returns ErrInvalidRequest when text is blank.
func BuildSummarizePrompt(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ErrInvalidRequest{Reason: "empty text"}
	}
	var b strings.Builder
	b.WriteString("Summarize the following text concisely. Capture the main points and key takeaways. Format with bullet points:\n\n")
	fmt.Fprintf(&b, "%q", text)
	return b.String(), nil
}

// BuildQuizPrompt returns the instruction prompt for generating a
// multiple-choice quiz as a raw JSON array.
func BuildQuizPrompt(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", &ErrInvalidRequest{Reason: "empty topic"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions about %q.\n", QuizQuestionCount, topic)
	b.WriteString("Output strictly valid JSON array of objects with keys:\n")
	b.WriteString(`- "question" (string)` + "\n")
	b.WriteString(`- "options" (array of 4 strings)` + "\n")
	b.WriteString(`- "correctAnswer" (integer index 0-3)` + "\n")
	b.WriteString("Do not include markdown formatting like ```json. Just the raw JSON array.")
	return b.String(), nil
}

// BuildFlashcardPrompt returns the instruction prompt for generating
// a flashcard deck as a raw JSON array.
func BuildFlashcardPrompt(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", &ErrInvalidRequest{Reason: "empty topic"}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d flashcards about %q for studying.\n", FlashcardCount, topic)
	b.WriteString("Output strictly valid JSON array of objects with keys:\n")
	b.WriteString(`- "front" (string: question or term, max 15 words)` + "\n")
	b.WriteString(`- "back" (string: answer or definition, max 50 words)` + "\n")
	b.WriteString("Do not include markdown formatting. Just the raw JSON array.")
	return b.String(), nil
}
