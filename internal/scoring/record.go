package scoring

import (
	"context"
	"fmt"
	"os"
)

// AttemptSaver persists scored attempts. Implemented by the local attempt
// repository in internal/store.
type AttemptSaver interface {
	SaveAttempt(ctx context.Context, rec AttemptRecord) error
}

// recordingScorer is a decorator that persists every successful attempt.
// Used with the LLM judge, where no sidecar owns the history.
type recordingScorer struct {
	inner Scorer
	saver AttemptSaver
}

// WithStore wraps a Scorer so each attempt is saved to the local store.
func WithStore(s Scorer, saver AttemptSaver) Scorer {
	return &recordingScorer{inner: s, saver: saver}
}

func (r *recordingScorer) Score(ctx context.Context, req Request) (*AttemptRecord, error) {
	rec, err := r.inner.Score(ctx, req)
	if err != nil {
		return nil, err
	}

	// Persist best-effort; a storage hiccup must not lose the judgment.
	if saveErr := r.saver.SaveAttempt(ctx, *rec); saveErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save attempt: %v\n", saveErr)
	}

	return rec, nil
}
