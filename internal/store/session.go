package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arvindh/recallo/ent"
	entblob "github.com/arvindh/recallo/ent/sessionblob"
	"github.com/arvindh/recallo/internal/session"
)

// sessionKey namespaces the study session blob within the blob table.
const sessionKey = "recallo:session"

// sessionTTL is how long a saved session stays restorable. Anything
// older is discarded on load so the learner starts fresh.
const sessionTTL = 24 * time.Hour

// sessionRepo implements session.Persister using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) SaveSession(ctx context.Context, snap session.Snapshot) error {
	snap.Version = session.SnapshotVersion
	data, err := snapshotToMap(snap)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	now := time.Now()
	n, err := r.client.SessionBlob.Update().
		Where(entblob.Key(sessionKey)).
		SetVersion(snap.Version).
		SetData(data).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session blob: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.SessionBlob.Create().
		SetKey(sessionKey).
		SetVersion(snap.Version).
		SetData(data).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session blob: %w", err)
	}
	return nil
}

func (r *sessionRepo) LoadSession(ctx context.Context) (*session.Snapshot, error) {
	row, err := r.client.SessionBlob.Query().
		Where(entblob.Key(sessionKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session blob: %w", err)
	}

	data, ok := migrateSessionData(row.Version, row.Data)
	if !ok {
		// Unknown or newer format: discard rather than guess.
		if clearErr := r.ClearSession(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	snap, err := snapshotFromMap(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	// Staleness is measured from when the session started, not from the
	// last write: a session studied past midnight still expires 24h
	// after it began.
	started := time.UnixMilli(snap.SessionStartedAt)
	if time.Since(started) > sessionTTL {
		if clearErr := r.ClearSession(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	snap.Version = session.SnapshotVersion
	return snap, nil
}

func (r *sessionRepo) ClearSession(ctx context.Context) error {
	_, err := r.client.SessionBlob.Delete().
		Where(entblob.Key(sessionKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session blob: %w", err)
	}
	return nil
}

func snapshotToMap(snap session.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func snapshotFromMap(m map[string]any) (*session.Snapshot, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var snap session.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
