package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

type memCallLog struct {
	mu      sync.Mutex
	records []CallRecord
	err     error
}

func (m *memCallLog) AppendLLMCall(_ context.Context, rec CallRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func TestLogging_RecordsSuccessfulCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 12, OutputTokens: 4}},
	)
	log := &memCallLog{}
	p := WithLogging(mock, "anthropic", log)

	ctx := WithPurpose(context.Background(), "score")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(log.records))
	}
	rec := log.records[0]
	if rec.Purpose != "score" {
		t.Errorf("purpose = %q, want score", rec.Purpose)
	}
	// Provider is the backend name; the model id goes in Model.
	if rec.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", rec.Provider)
	}
	if rec.Model == "anthropic" {
		t.Errorf("model = %q, must not be the provider name", rec.Model)
	}
	if !rec.Success || rec.ErrorMessage != "" {
		t.Errorf("record = %+v, want success", rec)
	}
	if rec.InputTokens != 12 || rec.OutputTokens != 4 {
		t.Errorf("tokens = %d/%d, want 12/4", rec.InputTokens, rec.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	log := &memCallLog{}
	p := WithLogging(mock, "mock", log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(log.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(log.records))
	}
	rec := log.records[0]
	if rec.Success || rec.ErrorMessage == "" {
		t.Errorf("record = %+v, want recorded failure", rec)
	}
}

func TestLogging_SinkFailureDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	log := &memCallLog{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", log)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure leaked into the call: %v", err)
	}
}
