package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arvindh/recallo/ent"
	entattempt "github.com/arvindh/recallo/ent/attempt"
	entcard "github.com/arvindh/recallo/ent/card"
	entdeck "github.com/arvindh/recallo/ent/deck"
	"github.com/arvindh/recallo/internal/deck"
)

// deckRepo implements DeckRepo using the ent client.
type deckRepo struct {
	client *ent.Client
}

func (r *deckRepo) CreateDeck(ctx context.Context, d *deck.Deck) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.Deck.Create().
		SetDeckID(d.ID).
		SetTitle(d.Title).
		SetDescription(d.Description).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("create deck: %w", err)
	}

	for i := range d.Cards {
		if d.Cards[i].ID == "" {
			d.Cards[i].ID = uuid.New().String()
		}
		if err := createCard(ctx, tx, d.ID, d.Cards[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *deckRepo) Decks(ctx context.Context) ([]deck.Deck, error) {
	rows, err := r.client.Deck.Query().
		Order(ent.Desc(entdeck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}

	out := make([]deck.Deck, 0, len(rows))
	for _, row := range rows {
		cards, err := r.cardsOf(ctx, row.DeckID)
		if err != nil {
			return nil, err
		}
		out = append(out, entDeckToDeck(row, cards))
	}
	return out, nil
}

func (r *deckRepo) DeckByID(ctx context.Context, deckID string) (*deck.Deck, error) {
	row, err := r.client.Deck.Query().
		Where(entdeck.DeckID(deckID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("deck %s not found", deckID)
		}
		return nil, fmt.Errorf("query deck: %w", err)
	}

	cards, err := r.cardsOf(ctx, deckID)
	if err != nil {
		return nil, err
	}
	d := entDeckToDeck(row, cards)
	return &d, nil
}

func (r *deckRepo) DeleteDeck(ctx context.Context, deckID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	cardIDs, err := tx.Card.Query().
		Where(entcard.DeckID(deckID)).
		Select(entcard.FieldCardID).
		Strings(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("query deck cards: %w", err)
	}

	if len(cardIDs) > 0 {
		if _, err := tx.Attempt.Delete().
			Where(entattempt.CardIDIn(cardIDs...)).
			Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("delete attempts: %w", err)
		}
	}

	if _, err := tx.Card.Delete().
		Where(entcard.DeckID(deckID)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete cards: %w", err)
	}

	n, err := tx.Deck.Delete().
		Where(entdeck.DeckID(deckID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete deck: %w", err)
	}
	if n == 0 {
		tx.Rollback()
		return fmt.Errorf("deck %s not found", deckID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *deckRepo) StudyCards(ctx context.Context, deckID string) ([]deck.CardSummary, error) {
	rows, err := r.client.Card.Query().
		Where(entcard.DeckID(deckID), entcard.Archived(false)).
		Order(ent.Asc(entcard.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study cards: %w", err)
	}

	out := make([]deck.CardSummary, len(rows))
	for i, row := range rows {
		out[i] = entCardToSummary(row)
	}
	return out, nil
}

func (r *deckRepo) SyncCard(ctx context.Context, card deck.CardSummary) error {
	upd := r.client.Card.Update().
		Where(entcard.CardID(card.ID)).
		SetPrompt(card.Prompt).
		SetAnswer(card.Answer).
		SetArchived(card.Archived).
		SetUpdatedAt(time.Now())

	if card.Keypoints != nil {
		upd.SetKeypoints(card.Keypoints)
	} else {
		upd.ClearKeypoints()
	}
	if card.AlternativeAnswers != nil {
		upd.SetAlternativeAnswers(card.AlternativeAnswers)
	} else {
		upd.ClearAlternativeAnswers()
	}

	if s := card.Schedule; s != nil {
		upd.SetDueAt(s.DueAt).
			SetInterval(s.Interval).
			SetEase(s.Ease).
			SetStreak(s.Streak)
		if s.LastQuality != nil {
			upd.SetLastQuality(*s.LastQuality)
		} else {
			upd.ClearLastQuality()
		}
	} else {
		upd.ClearDueAt().
			SetInterval(0).
			SetEase(0).
			SetStreak(0).
			ClearLastQuality()
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("sync card: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("card %s not found", card.ID)
	}
	return nil
}

func (r *deckRepo) BulkUpdateCards(ctx context.Context, cardIDs []string, op BulkOp) (int, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}

	now := time.Now()
	upd := r.client.Card.Update().
		Where(entcard.CardIDIn(cardIDs...)).
		SetUpdatedAt(now)

	switch op {
	case BulkArchive:
		upd.SetArchived(true)
	case BulkUnarchive:
		upd.SetArchived(false)
	case BulkMarkLearned:
		// A learned card gets a long, settled schedule: 180 days out
		// with a full streak.
		upd.SetDueAt(now.AddDate(0, 0, 180)).
			SetInterval(180).
			SetEase(2.5).
			SetStreak(10)
	case BulkResetSchedule:
		// Back to the initial schedule: due immediately.
		upd.SetDueAt(now).
			SetInterval(1).
			SetEase(2.5).
			SetStreak(0).
			ClearLastQuality()
	default:
		return 0, fmt.Errorf("unknown bulk operation %q", op)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk update cards: %w", err)
	}
	return n, nil
}

func (r *deckRepo) cardsOf(ctx context.Context, deckID string) ([]deck.CardSummary, error) {
	rows, err := r.client.Card.Query().
		Where(entcard.DeckID(deckID)).
		Order(ent.Asc(entcard.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	out := make([]deck.CardSummary, len(rows))
	for i, row := range rows {
		out[i] = entCardToSummary(row)
	}
	return out, nil
}

func createCard(ctx context.Context, tx *ent.Tx, deckID string, c deck.CardSummary) error {
	create := tx.Card.Create().
		SetCardID(c.ID).
		SetDeckID(deckID).
		SetPrompt(c.Prompt).
		SetAnswer(c.Answer).
		SetArchived(c.Archived)

	if c.Keypoints != nil {
		create.SetKeypoints(c.Keypoints)
	}
	if c.AlternativeAnswers != nil {
		create.SetAlternativeAnswers(c.AlternativeAnswers)
	}
	if s := c.Schedule; s != nil {
		create.SetDueAt(s.DueAt).
			SetInterval(s.Interval).
			SetEase(s.Ease).
			SetStreak(s.Streak)
		if s.LastQuality != nil {
			create.SetLastQuality(*s.LastQuality)
		}
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create card %s: %w", c.ID, err)
	}
	return nil
}

func entDeckToDeck(row *ent.Deck, cards []deck.CardSummary) deck.Deck {
	return deck.Deck{
		ID:          row.DeckID,
		Title:       row.Title,
		Description: row.Description,
		UpdatedAt:   row.UpdatedAt,
		Cards:       cards,
	}
}

func entCardToSummary(row *ent.Card) deck.CardSummary {
	c := deck.CardSummary{
		ID:                 row.CardID,
		Prompt:             row.Prompt,
		Answer:             row.Answer,
		Keypoints:          row.Keypoints,
		Archived:           row.Archived,
		AlternativeAnswers: row.AlternativeAnswers,
	}
	if row.DueAt != nil {
		c.Schedule = &deck.Schedule{
			DueAt:       *row.DueAt,
			Interval:    row.Interval,
			Ease:        row.Ease,
			Streak:      row.Streak,
			LastQuality: row.LastQuality,
		}
	}
	return c
}
