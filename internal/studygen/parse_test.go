package studygen

import (
	"testing"
)

const validQuizJSON = `[
  {"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "correctAnswer": 1},
  {"question": "Capital of France?", "options": ["Berlin", "Madrid", "Paris", "Rome"], "correctAnswer": 2}
]`

const validFlashcardJSON = `[
  {"front": "Photosynthesis", "back": "Process by which plants convert light into chemical energy"},
  {"front": "Mitochondria", "back": "The powerhouse of the cell"}
]`

func TestParseQuiz_Valid(t *testing.T) {
	set, err := ParseQuiz(validQuizJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("len = %d, want 2", len(set))
	}
	if set[0].Text != "What is 2+2?" {
		t.Errorf("text = %q", set[0].Text)
	}
	if set[0].CorrectIndex != 1 {
		t.Errorf("correctIndex = %d, want 1", set[0].CorrectIndex)
	}
	if set[1].Options[2] != "Paris" {
		t.Errorf("options[2] = %q, want Paris", set[1].Options[2])
	}
}

func TestParseQuiz_FencedEqualsUnfenced(t *testing.T) {
	plain, err := ParseQuiz(validQuizJSON)
	if err != nil {
		t.Fatalf("parse plain: %v", err)
	}

	variants := map[string]string{
		"with tag":    "```json\n" + validQuizJSON + "\n```",
		"without tag": "```\n" + validQuizJSON + "\n```",
		"padded":      "\n\n```json\n" + validQuizJSON + "\n```\n\n",
	}
	for name, fenced := range variants {
		got, err := ParseQuiz(fenced)
		if err != nil {
			t.Errorf("%s: parse: %v", name, err)
			continue
		}
		if len(got) != len(plain) {
			t.Errorf("%s: len = %d, want %d", name, len(got), len(plain))
			continue
		}
		for i := range got {
			if got[i].Text != plain[i].Text || got[i].CorrectIndex != plain[i].CorrectIndex {
				t.Errorf("%s: question %d differs from unfenced parse", name, i)
			}
		}
	}
}

func TestParseQuiz_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty array", `[]`},
		{"non-array", `{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 0}`},
		{"not JSON", `here are your questions!`},
		{"missing options", `[{"question": "Q?", "correctAnswer": 0}]`},
		{"three options", `[{"question": "Q?", "options": ["a","b","c"], "correctAnswer": 0}]`},
		{"five options", `[{"question": "Q?", "options": ["a","b","c","d","e"], "correctAnswer": 0}]`},
		{"index out of range", `[{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": 4}]`},
		{"negative index", `[{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": -1}]`},
		{"non-integer index", `[{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": "1"}]`},
		{"empty question", `[{"question": "", "options": ["a","b","c","d"], "correctAnswer": 0}]`},
		{"duplicate options", `[{"question": "Q?", "options": ["a","a","b","c"], "correctAnswer": 0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseQuiz(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsMalformed(err) {
				t.Errorf("error = %v, want ErrMalformedContent", err)
			}
			if set != nil {
				t.Error("expected nil set on failure")
			}
		})
	}
}

func TestParseFlashcards_Valid(t *testing.T) {
	deck, err := ParseFlashcards(validFlashcardJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(deck) != 2 {
		t.Fatalf("len = %d, want 2", len(deck))
	}
	if deck[1].Front != "Mitochondria" {
		t.Errorf("front = %q", deck[1].Front)
	}
	if deck[1].Back != "The powerhouse of the cell" {
		t.Errorf("back = %q", deck[1].Back)
	}
}

func TestParseFlashcards_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty array", `[]`},
		{"missing back", `[{"front": "Term"}]`},
		{"empty front", `[{"front": "", "back": "Definition"}]`},
		{"not JSON", "Sure, here are your flashcards:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlashcards(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsMalformed(err) {
				t.Errorf("error = %v, want ErrMalformedContent", err)
			}
		})
	}
}

func TestParseFreeform(t *testing.T) {
	got := ParseFreeform("\n  # Heading\n\nBody with **bold** text.\n\n")
	want := "# Heading\n\nBody with **bold** text."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `[1,2]`, `[1,2]`},
		{"json tag", "```json\n[1,2]\n```", `[1,2]`},
		{"no tag", "```\n[1,2]\n```", `[1,2]`},
		{"leading only", "```json\n[1,2]", `[1,2]`},
		{"surrounding whitespace", "  \n```json\n[1,2]\n```  \n", `[1,2]`},
		{"interior fence preserved", "```\ntext with ``` inside\n```", "text with ``` inside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
