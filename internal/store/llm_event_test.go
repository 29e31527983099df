package store

import (
	"context"
	"testing"

	"github.com/arvindh/recallo/internal/llm"
)

func TestCallLog_Append(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.CallLog().AppendLLMCall(ctx, llm.CallRecord{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "score",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	rows, err := s.Client().LLMCallEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Purpose != "score" || rows[0].InputTokens != 120 || !rows[0].Success {
		t.Errorf("row = %+v", rows[0])
	}
}
