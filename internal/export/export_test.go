package export

import (
	"strings"
	"testing"

	"github.com/abhisek/studiz/internal/study"
	"github.com/abhisek/studiz/internal/studygen"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# Heading", " Heading"},
		{"**bold** and *italic*", "bold and italic"},
		{"`code` span", "code span"},
		{"plain text", "plain text"},
		{"- bullets stay", "- bullets stay"},
	}
	for _, tt := range tests {
		if got := StripMarkdown(tt.in); got != tt.want {
			t.Errorf("StripMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExplainTranscript(t *testing.T) {
	out := ExplainTranscript("Gravity", "# Gravity\n\nThings **fall**.")

	if !strings.Contains(out, "Topic: Gravity") {
		t.Error("missing topic line")
	}
	if !strings.Contains(out, "Things fall.") {
		t.Error("missing stripped body")
	}
	if strings.ContainsAny(out[strings.Index(out, "Topic:"):], "#*`") {
		t.Error("formatting markers not stripped from body")
	}
}

func TestQuizTranscript(t *testing.T) {
	deck := studygen.QuizQuestionSet{
		{Text: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 1},
		{Text: "Capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, CorrectIndex: 2},
	}
	s, err := study.NewQuizSession(deck)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	// First right, second wrong.
	epoch, _ := s.SelectAnswer(1)
	s.Advance(epoch)
	epoch, _ = s.SelectAnswer(0)
	s.Advance(epoch)

	out := QuizTranscript("mixed trivia", s)

	if !strings.Contains(out, "Score: 1/2") {
		t.Error("missing score")
	}
	if !strings.Contains(out, "1. What is 2+2?") {
		t.Error("missing first question")
	}
	if !strings.Contains(out, "Your answer: 4") {
		t.Error("missing chosen option for question 1")
	}
	if !strings.Contains(out, "Your answer: Berlin") {
		t.Error("missing chosen option for question 2")
	}
	if !strings.Contains(out, "Correct answer: Paris") {
		t.Error("missing correct option for the wrong answer")
	}
}
