package scoring

import (
	"context"
	"sync"
)

// MockResult is a canned scoring outcome for tests.
type MockResult struct {
	Record *AttemptRecord
	Err    error
}

// MockScorer returns canned results in FIFO order and records every request.
type MockScorer struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []Request
}

var _ Scorer = (*MockScorer)(nil)

// NewMockScorer creates a MockScorer with the given canned results.
func NewMockScorer(results ...MockResult) *MockScorer {
	return &MockScorer{results: results}
}

func (m *MockScorer) Score(_ context.Context, req Request) (*AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.results) == 0 {
		return &AttemptRecord{
			ID:         "mock-attempt",
			CardID:     req.CardID,
			UserAnswer: req.UserAnswer,
			Verdict:    VerdictCorrect,
			Score:      1,
			Cosine:     1,
			Coverage:   1,
		}, nil
	}

	res := m.results[0]
	m.results = m.results[1:]
	if res.Err != nil {
		return nil, res.Err
	}
	rec := *res.Record
	if rec.CardID == "" {
		rec.CardID = req.CardID
	}
	if rec.UserAnswer == "" {
		rec.UserAnswer = req.UserAnswer
	}
	return &rec, nil
}

// Add appends a canned result.
func (m *MockScorer) Add(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// MockHistory serves canned attempt lists per card and records lookups.
type MockHistory struct {
	mu      sync.Mutex
	ByCard  map[string][]AttemptRecord
	Errs    map[string]error
	Lookups []string
}

var _ History = (*MockHistory)(nil)

// NewMockHistory creates an empty MockHistory.
func NewMockHistory() *MockHistory {
	return &MockHistory{
		ByCard: make(map[string][]AttemptRecord),
		Errs:   make(map[string]error),
	}
}

func (m *MockHistory) Attempts(_ context.Context, cardID string, limit int) ([]AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Lookups = append(m.Lookups, cardID)

	if err, ok := m.Errs[cardID]; ok {
		return nil, err
	}
	recs := m.ByCard[cardID]
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	out := make([]AttemptRecord, len(recs))
	copy(out, recs)
	return out, nil
}

// LookupCount returns how many Attempts calls were made for cardID.
func (m *MockHistory) LookupCount(cardID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, id := range m.Lookups {
		if id == cardID {
			n++
		}
	}
	return n
}
