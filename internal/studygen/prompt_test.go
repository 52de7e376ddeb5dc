package studygen

import (
	"strings"
	"testing"
)

func TestBuildExplainPrompt(t *testing.T) {
	prompt, err := BuildExplainPrompt("Photosynthesis")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, `"Photosynthesis"`) {
		t.Error("missing topic")
	}
	if !strings.Contains(prompt, "real-world analogies") {
		t.Error("missing analogy instruction")
	}
	if !strings.Contains(prompt, "Markdown") {
		t.Error("missing formatting instruction")
	}
}

func TestBuildExplainPrompt_Deterministic(t *testing.T) {
	a, err := BuildExplainPrompt("Gravity")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := BuildExplainPrompt("Gravity")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if a != b {
		t.Error("same topic produced different prompts")
	}
}

func TestBuildSummarizePrompt(t *testing.T) {
	prompt, err := BuildSummarizePrompt("The mitochondria is the powerhouse of the cell.")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, "Summarize the following text") {
		t.Error("missing summarize instruction")
	}
	if !strings.Contains(prompt, "mitochondria") {
		t.Error("missing input text")
	}
	if !strings.Contains(prompt, "bullet points") {
		t.Error("missing formatting instruction")
	}
}

func TestBuildQuizPrompt(t *testing.T) {
	prompt, err := BuildQuizPrompt("The French Revolution")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, "5 multiple-choice questions") {
		t.Error("missing question count")
	}
	for _, key := range []string{`"question"`, `"options"`, `"correctAnswer"`} {
		if !strings.Contains(prompt, key) {
			t.Errorf("missing key instruction %s", key)
		}
	}
	if !strings.Contains(prompt, "integer index 0-3") {
		t.Error("missing index range instruction")
	}
	if !strings.Contains(prompt, "Do not include markdown formatting") {
		t.Error("missing no-fence instruction")
	}
}

func TestBuildFlashcardPrompt(t *testing.T) {
	prompt, err := BuildFlashcardPrompt("Quantum Entanglement")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(prompt, "8 flashcards") {
		t.Error("missing card count")
	}
	if !strings.Contains(prompt, "max 15 words") {
		t.Error("missing front word bound")
	}
	if !strings.Contains(prompt, "max 50 words") {
		t.Error("missing back word bound")
	}
}

func TestBuildPrompts_EmptyInput(t *testing.T) {
	builders := map[string]func(string) (string, error){
		"explain":   BuildExplainPrompt,
		"summarize": BuildSummarizePrompt,
		"quiz":      BuildQuizPrompt,
		"flashcard": BuildFlashcardPrompt,
	}

	for name, build := range builders {
		for _, input := range []string{"", "   ", "\n\t"} {
			_, err := build(input)
			if err == nil {
				t.Errorf("%s(%q): expected error for blank input", name, input)
				continue
			}
			if !IsInvalidRequest(err) {
				t.Errorf("%s(%q): error = %v, want ErrInvalidRequest", name, input, err)
			}
		}
	}
}
