package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// CallRecord captures one model call for the local audit log.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// CallLog receives call records. The sqlite-backed implementation lives
// in internal/store.
type CallLog interface {
	AppendLLMCall(ctx context.Context, rec CallRecord) error
}

// LoggingProvider is a decorator that records every model call.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      CallLog
}

// WithLogging wraps a Provider with call logging. provider is the
// backend name ("anthropic", "openai", ...), not a model id.
func WithLogging(p Provider, provider string, log CallLog) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := CallRecord{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Logging never fails the call itself.
	if logErr := l.log.AppendLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
