package studygen

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// contentSchema pairs a schema name with its JSON-schema definition.
type contentSchema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ParseFreeform normalizes a free-text completion (explain, summarize).
// The text passes through untouched apart from surrounding whitespace;
// Markdown inside is preserved for rendering.
func ParseFreeform(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseQuiz validates raw completion text against the quiz schema and
// returns the ordered question set. Any structural failure, from
// invalid JSON to a single out-of-range field, is ErrMalformedContent;
// no partial result is ever returned.
func ParseQuiz(raw string) (QuizQuestionSet, error) {
	stripped := stripFences(raw)

	if err := validateContent(quizSchema, stripped); err != nil {
		return nil, err
	}

	var out []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
	}
	if err := json.Unmarshal([]byte(stripped), &out); err != nil {
		return nil, &ErrMalformedContent{Content: stripped, Err: err}
	}

	set := make(QuizQuestionSet, len(out))
	for i, q := range out {
		set[i] = QuizQuestion{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswer,
		}
	}
	return set, nil
}

// ParseFlashcards validates raw completion text against the flashcard
// schema and returns the deck. All-or-nothing like ParseQuiz.
func ParseFlashcards(raw string) (FlashcardDeck, error) {
	stripped := stripFences(raw)

	if err := validateContent(flashcardSchema, stripped); err != nil {
		return nil, err
	}

	var out []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := json.Unmarshal([]byte(stripped), &out); err != nil {
		return nil, &ErrMalformedContent{Content: stripped, Err: err}
	}

	deck := make(FlashcardDeck, len(out))
	for i, c := range out {
		deck[i] = Flashcard{Front: c.Front, Back: c.Back}
	}
	return deck, nil
}

// stripFences removes a surrounding Markdown code fence, with or
// without a language tag. Only the outermost fence pair is removed;
// fence markers inside the body are left alone.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		rest := s[len("```"):]
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			// Drop the opening fence line including any language tag.
			s = rest[idx+1:]
		} else {
			// One-line fenced blob: ```json [...] ```
			s = strings.TrimSpace(rest)
			s = strings.TrimPrefix(s, "json")
		}
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}

	return strings.TrimSpace(s)
}

// validateContent validates JSON text against the given schema.
// Returns *ErrMalformedContent on any failure.
func validateContent(schema *contentSchema, text string) error {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return &ErrMalformedContent{
			Content: text,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrMalformedContent{
			Content: text,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrMalformedContent{
			Content: text,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *contentSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
