package studygen

// quizSchema validates a quiz response: a non-empty JSON array where
// each element has a question, exactly 4 distinct options, and a
// correct-answer index within range.
var quizSchema = &contentSchema{
	Name: "quiz-question-set",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    4,
					"maxItems":    4,
					"uniqueItems": true,
				},
				"correctAnswer": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 3,
				},
			},
			"required":             []any{"question", "options", "correctAnswer"},
			"additionalProperties": false,
		},
	},
}

// flashcardSchema validates a flashcard response: a non-empty JSON
// array of front/back string pairs. Word-count guidance from the
// prompt is advisory and not checked here.
var flashcardSchema = &contentSchema{
	Name: "flashcard-deck",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"front": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"back": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"required":             []any{"front", "back"},
			"additionalProperties": false,
		},
	},
}
