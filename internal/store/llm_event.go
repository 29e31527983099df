package store

import (
	"context"
	"fmt"

	"github.com/arvindh/recallo/ent"
	"github.com/arvindh/recallo/internal/llm"
)

// callLog implements llm.CallLog backed by ent.
type callLog struct {
	client *ent.Client
}

var _ llm.CallLog = (*callLog)(nil)

func (l *callLog) AppendLLMCall(ctx context.Context, rec llm.CallRecord) error {
	_, err := l.client.LLMCallEvent.Create().
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM call event: %w", err)
	}
	return nil
}
