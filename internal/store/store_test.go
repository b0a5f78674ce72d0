package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "qgen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RunID:        "run-1",
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "variation-gen",
		InputTokens:  120,
		OutputTokens: 340,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[user]\ngenerate a question",
		ResponseBody: `{"question_text":"..."}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RunID:        "run-1",
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "variation-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.True(t, events[1].Success)
	assert.Equal(t, 340, events[1].OutputTokens)
	assert.Equal(t, "run-1", events[1].RunID)
	assert.False(t, events[1].Timestamp.IsZero())
}

func TestQueryLLMEvents_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{RunID: "run-a", Purpose: "variation-gen", Model: "m", Provider: "p", Success: true},
		{RunID: "run-b", Purpose: "variation-gen", Model: "m", Provider: "p", Success: true},
		{RunID: "run-b", Purpose: "smoke-test", Model: "m", Provider: "p", Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byRun, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "run-b"})
	require.NoError(t, err)
	assert.Len(t, byRun, 2)

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "run-b", Purpose: "smoke-test"})
	require.NoError(t, err)
	assert.Len(t, byPurpose, 1)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "variation-gen", Success: true,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "gpt-4o-mini", e.Model)

	missing, err := repo.GetLLMEvent(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Purpose: "variation-gen", Model: "gemini-2.0-flash", Provider: "gemini", InputTokens: 100, OutputTokens: 200, LatencyMs: 400, Success: true},
		{Purpose: "variation-gen", Model: "gemini-2.0-flash", Provider: "gemini", InputTokens: 50, OutputTokens: 100, LatencyMs: 600, Success: true},
		{Purpose: "smoke-test", Model: "gpt-4o-mini", Provider: "openai", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "variation-gen", byPurpose[0].Key)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 150, byPurpose[0].InputTokens)
	assert.Equal(t, 300, byPurpose[0].OutputTokens)
	assert.Equal(t, int64(500), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.UsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.0-flash", byModel[0].Key)
}
