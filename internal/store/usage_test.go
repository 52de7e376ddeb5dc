package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEvents()
	ctx := context.Background()

	events := []LLMEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "usage-quiz", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "usage-quiz", InputTokens: 120, OutputTokens: 70, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "usage-explain", InputTokens: 30, OutputTokens: 300, LatencyMs: 900, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMEvent(ctx, e))
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)

	byPurpose := make(map[string]LLMUsage)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	quiz, ok := byPurpose["usage-quiz"]
	require.True(t, ok, "expected usage-quiz row")
	require.Equal(t, 2, quiz.Calls)
	require.Equal(t, 220, quiz.InputTokens)
	require.Equal(t, 120, quiz.OutputTokens)
	require.Equal(t, int64(300), quiz.AvgLatencyMs)

	explain, ok := byPurpose["usage-explain"]
	require.True(t, ok, "expected usage-explain row")
	require.Equal(t, 1, explain.Calls)
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEvents()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
		Provider: "anthropic", Model: "model-usage-test",
		Purpose: "usage-model", InputTokens: 11, OutputTokens: 22, Success: true,
	}))

	usage, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)

	var found *LLMUsage
	for i := range usage {
		if usage[i].Model == "model-usage-test" {
			found = &usage[i]
			break
		}
	}
	require.NotNil(t, found, "expected model-usage-test row")
	require.Equal(t, 1, found.Calls)
	require.Equal(t, 11, found.InputTokens)
	require.Equal(t, 22, found.OutputTokens)
}
