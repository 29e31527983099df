package scoring

import (
	"context"
	"time"

	"github.com/arvindh/recallo/internal/deck"
)

// Verdict is the outcome tag a scorer assigns to an answer.
type Verdict string

const (
	VerdictIncorrect Verdict = "incorrect"
	VerdictMissing   Verdict = "missing" // keypoints absent
	VerdictAlmost    Verdict = "almost"
	VerdictCorrect   Verdict = "correct"
)

// Valid reports whether v is one of the four known verdicts.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictIncorrect, VerdictMissing, VerdictAlmost, VerdictCorrect:
		return true
	}
	return false
}

// Request carries everything a scorer needs to judge one answer.
// Field names mirror the sidecar wire format.
type Request struct {
	CardID             string   `json:"cardId"`
	Prompt             string   `json:"prompt"`
	ExpectedAnswer     string   `json:"expectedAnswer"`
	Keypoints          []string `json:"keypoints"`
	UserAnswer         string   `json:"userAnswer"`
	AlternativeAnswers []string `json:"alternativeAnswers,omitempty"`
}

// AttemptRecord is the result of scoring one submitted answer.
// Score, Cosine and Coverage are in [0,1].
type AttemptRecord struct {
	ID               string         `json:"id"`
	CardID           string         `json:"cardId"`
	UserAnswer       string         `json:"userAnswer"`
	Verdict          Verdict        `json:"verdict"`
	Score            float64        `json:"score"`
	Cosine           float64        `json:"cosine"`
	Coverage         float64        `json:"coverage"`
	MissingKeypoints []string       `json:"missingKeypoints"`
	Feedback         string         `json:"feedback,omitempty"`
	Prompt           string         `json:"prompt,omitempty"`
	ExpectedAnswer   string         `json:"expectedAnswer,omitempty"`
	Keypoints        []string       `json:"keypoints,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	Schedule         *deck.Schedule `json:"schedule,omitempty"`
}

// Scorer judges a submitted answer against a card.
type Scorer interface {
	Score(ctx context.Context, req Request) (*AttemptRecord, error)
}

// History serves past attempts for a card, newest first. Implementations
// fail with a not-found-class error when the card no longer exists.
type History interface {
	Attempts(ctx context.Context, cardID string, limit int) ([]AttemptRecord, error)
}
