// Package export flattens study content into plain-text transcripts
// for external document rendering.
package export

import (
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/study"
	"github.com/abhisek/studiz/internal/studygen"
)

// StripMarkdown removes the formatting marker characters (#, *, `)
// from Markdown-bearing text, leaving the words intact.
func StripMarkdown(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '`':
			return -1
		}
		return r
	}, s)
}

// ExplainTranscript renders an explanation (or summary) as a plain
// transcript: topic header followed by the body with formatting
// markers stripped.
func ExplainTranscript(topic, body string) string {
	var b strings.Builder
	b.WriteString("StudyBuddy AI — Explanation\n")
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString(strings.TrimSpace(StripMarkdown(body)))
	b.WriteString("\n")
	return b.String()
}

// QuizTranscript renders a finished quiz as a plain transcript with
// per-question chosen vs correct options and the final score.
func QuizTranscript(topic string, s *study.QuizSession) string {
	deck := s.Deck()

	var b strings.Builder
	b.WriteString("StudyBuddy AI — Quiz Results\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Score: %d/%d\n\n", s.Score(), s.Len())

	for _, a := range s.Answers() {
		q := deck[a.QuestionIndex]
		fmt.Fprintf(&b, "%d. %s\n", a.QuestionIndex+1, StripMarkdown(q.Text))
		fmt.Fprintf(&b, "   Your answer: %s\n", option(q, a.SelectedIndex))
		if a.Correct {
			b.WriteString("   Correct\n")
		} else {
			fmt.Fprintf(&b, "   Correct answer: %s\n", option(q, a.CorrectIndex))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func option(q studygen.QuizQuestion, idx int) string {
	if idx < 0 || idx >= len(q.Options) {
		return "(none)"
	}
	return q.Options[idx]
}
