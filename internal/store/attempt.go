package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arvindh/recallo/ent"
	entattempt "github.com/arvindh/recallo/ent/attempt"
	entcard "github.com/arvindh/recallo/ent/card"
	"github.com/arvindh/recallo/internal/scoring"
	"github.com/arvindh/recallo/internal/session"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) SaveAttempt(ctx context.Context, rec scoring.AttemptRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	create := r.client.Attempt.Create().
		SetAttemptID(rec.ID).
		SetCardID(rec.CardID).
		SetUserAnswer(rec.UserAnswer).
		SetVerdict(string(rec.Verdict)).
		SetScore(rec.Score).
		SetCosine(rec.Cosine).
		SetCoverage(rec.Coverage).
		SetFeedback(rec.Feedback).
		SetPrompt(rec.Prompt).
		SetExpectedAnswer(rec.ExpectedAnswer)

	if rec.MissingKeypoints != nil {
		create.SetMissingKeypoints(rec.MissingKeypoints)
	}
	if rec.Keypoints != nil {
		create.SetKeypoints(rec.Keypoints)
	}
	if !rec.CreatedAt.IsZero() {
		create.SetCreatedAt(rec.CreatedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	// Scorers that own the interval math return the card's next schedule
	// with the attempt; apply it to the card row.
	if s := rec.Schedule; s != nil {
		upd := r.client.Card.Update().
			Where(entcard.CardID(rec.CardID)).
			SetDueAt(s.DueAt).
			SetInterval(s.Interval).
			SetEase(s.Ease).
			SetStreak(s.Streak)
		if s.LastQuality != nil {
			upd.SetLastQuality(*s.LastQuality)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("apply schedule: %w", err)
		}
	}

	return r.pruneCard(ctx, rec.CardID)
}

// pruneCard keeps only the newest attempts for a card, matching the
// in-memory cache cap.
func (r *attemptRepo) pruneCard(ctx context.Context, cardID string) error {
	old, err := r.client.Attempt.Query().
		Where(entattempt.CardID(cardID)).
		Order(ent.Desc(entattempt.FieldCreatedAt)).
		Offset(session.MaxAttemptsPerCard).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query attempts for prune: %w", err)
	}
	if len(old) == 0 {
		return nil
	}

	ids := make([]int, len(old))
	for i, a := range old {
		ids[i] = a.ID
	}
	if _, err := r.client.Attempt.Delete().
		Where(entattempt.IDIn(ids...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("prune attempts: %w", err)
	}
	return nil
}

func (r *attemptRepo) Attempts(ctx context.Context, cardID string, limit int) ([]scoring.AttemptRecord, error) {
	exists, err := r.client.Card.Query().
		Where(entcard.CardID(cardID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check card: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("card %s not found", cardID)
	}

	q := r.client.Attempt.Query().
		Where(entattempt.CardID(cardID)).
		Order(ent.Desc(entattempt.FieldCreatedAt))
	if limit > 0 {
		q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]scoring.AttemptRecord, len(rows))
	for i, row := range rows {
		out[i] = entAttemptToRecord(row)
	}
	return out, nil
}

func entAttemptToRecord(row *ent.Attempt) scoring.AttemptRecord {
	return scoring.AttemptRecord{
		ID:               row.AttemptID,
		CardID:           row.CardID,
		UserAnswer:       row.UserAnswer,
		Verdict:          scoring.Verdict(row.Verdict),
		Score:            row.Score,
		Cosine:           row.Cosine,
		Coverage:         row.Coverage,
		MissingKeypoints: row.MissingKeypoints,
		Feedback:         row.Feedback,
		Prompt:           row.Prompt,
		ExpectedAnswer:   row.ExpectedAnswer,
		Keypoints:        row.Keypoints,
		CreatedAt:        row.CreatedAt,
	}
}
