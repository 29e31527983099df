package deck

import (
	"time"
)

// Schedule is the spaced-repetition state attached to a card. The scoring
// sidecar owns the interval math; Recallo carries these fields around as an
// opaque payload and never recomputes them.
type Schedule struct {
	DueAt       time.Time `json:"dueAt"`
	Interval    int       `json:"interval"`
	Ease        float64   `json:"ease"`
	Streak      int       `json:"streak"`
	LastQuality *int      `json:"quality,omitempty"`
}

// CardSummary is a card as presented during study. Answer may be empty in
// UI-trimmed views.
type CardSummary struct {
	ID                 string    `json:"id"`
	Prompt             string    `json:"prompt"`
	Answer             string    `json:"answer,omitempty"`
	Keypoints          []string  `json:"keypoints,omitempty"`
	Schedule           *Schedule `json:"schedule,omitempty"`
	Archived           bool      `json:"archived,omitempty"`
	AlternativeAnswers []string  `json:"alternativeAnswers,omitempty"`
}

// Merge returns c overlaid with every field of in that is present.
// Present means non-empty for strings, non-nil for slices and pointers.
// Archived is copied unconditionally; callers pass full card payloads.
func (c CardSummary) Merge(in CardSummary) CardSummary {
	out := c
	if in.Prompt != "" {
		out.Prompt = in.Prompt
	}
	if in.Answer != "" {
		out.Answer = in.Answer
	}
	if in.Keypoints != nil {
		out.Keypoints = in.Keypoints
	}
	if in.Schedule != nil {
		out.Schedule = in.Schedule
	}
	if in.AlternativeAnswers != nil {
		out.AlternativeAnswers = in.AlternativeAnswers
	}
	out.Archived = in.Archived
	return out
}

// Deck groups cards under a title.
type Deck struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Cards       []CardSummary `json:"cards,omitempty"`
}

// CardCount returns the number of non-archived cards.
func (d *Deck) CardCount() int {
	n := 0
	for _, c := range d.Cards {
		if !c.Archived {
			n++
		}
	}
	return n
}
