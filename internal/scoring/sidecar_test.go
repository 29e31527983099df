package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSidecar(t *testing.T, handler http.HandlerFunc) *SidecarClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSidecarClient(SidecarConfig{BaseURL: srv.URL})
}

func TestSidecarScore(t *testing.T) {
	c := newTestSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/score", r.URL.Path)

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.CardID)
		assert.Equal(t, "mutexes", req.UserAnswer)

		json.NewEncoder(w).Encode(AttemptRecord{
			ID:       "a1",
			CardID:   req.CardID,
			Verdict:  VerdictAlmost,
			Score:    0.81,
			Cosine:   0.88,
			Coverage: 0.5,
		})
	})

	rec, err := c.Score(context.Background(), Request{
		CardID:         "c1",
		Prompt:         "How do you protect shared state?",
		ExpectedAnswer: "With mutexes or channels",
		UserAnswer:     "mutexes",
	})
	require.NoError(t, err)
	assert.Equal(t, VerdictAlmost, rec.Verdict)
	assert.InDelta(t, 0.81, rec.Score, 1e-9)
}

func TestSidecarAttempts(t *testing.T) {
	c := newTestSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cards/c1/attempts", r.URL.Path)
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]AttemptRecord{
			{ID: "a2", CardID: "c1", Verdict: VerdictCorrect},
			{ID: "a1", CardID: "c1", Verdict: VerdictIncorrect},
		})
	})

	recs, err := c.Attempts(context.Background(), "c1", 5)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a2", recs[0].ID, "newest first")
}

func TestSidecarNotFoundClassifies(t *testing.T) {
	c := newTestSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "card c9 not found"})
	})

	_, err := c.Attempts(context.Background(), "c9", 10)
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "error should classify as not-found: %v", err)
}

func TestSidecarServerErrorIsNotNotFound(t *testing.T) {
	c := newTestSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Attempts(context.Background(), "c1", 10)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestSidecarConnectionErrorClassifiesAsTransport(t *testing.T) {
	// Port from a closed server: connection refused.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewSidecarClient(SidecarConfig{BaseURL: url})
	_, err := c.Score(context.Background(), Request{CardID: "c1"})
	require.Error(t, err)
	assert.True(t, IsTransport(err), "error should classify as transport: %v", err)
}

func TestSidecarHealth(t *testing.T) {
	c := newTestSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(HealthStatus{Status: "ok", Database: "ready", ModelCache: "warm"})
	})

	hs, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", hs.Status)
}
