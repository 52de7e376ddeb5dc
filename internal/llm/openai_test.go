package llm

import (
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gpt-4o-mini", "gpt-4o-mini"},
		{"gpt-4o", "gpt-4o"},
		{"mistralai/mistral-7b-instruct", "mistralai/mistral-7b-instruct"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, openaiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	if !IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestBuildOpenAIMessages(t *testing.T) {
	req := Request{
		System: "be helpful",
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
			{Role: RoleAssistant, Content: "hi"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message role = %q, want system", msgs[0].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("third message role = %q, want assistant", msgs[2].Role)
	}
}

func TestMapOpenAIError(t *testing.T) {
	rateLimited := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}
	if !IsProvider(mapOpenAIError(rateLimited)) {
		t.Error("429 should classify as a provider failure")
	}

	unauthorized := &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}
	if !IsConfiguration(mapOpenAIError(unauthorized)) {
		t.Error("401 should classify as a configuration failure")
	}

	serverError := &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}
	if !IsProvider(mapOpenAIError(serverError)) {
		t.Error("500 should classify as a provider failure")
	}
}
