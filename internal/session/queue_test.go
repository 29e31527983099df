package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/arvindh/recallo/internal/deck"
	"github.com/arvindh/recallo/internal/scoring"
)

func card(id string) deck.CardSummary {
	return deck.CardSummary{
		ID:     id,
		Prompt: "prompt " + id,
		Answer: "answer " + id,
	}
}

func threeCardState(t *testing.T) State {
	t.Helper()
	s := Transition(EmptyState(), Bootstrap{
		DeckID: "d1",
		Cards:  []deck.CardSummary{card("A"), card("B"), card("C")},
	})
	if s.ActiveID() != "A" {
		t.Fatalf("active = %q, want A", s.ActiveID())
	}
	return s
}

func queueIDs(s State) []string {
	ids := make([]string, len(s.Queue))
	for i, c := range s.Queue {
		ids[i] = c.ID
	}
	return ids
}

func TestBootstrap_TotalCountsNonArchived(t *testing.T) {
	archived := card("X")
	archived.Archived = true

	s := Transition(EmptyState(), Bootstrap{
		DeckID: "d1",
		Cards:  []deck.CardSummary{card("A"), archived, card("B")},
	})

	if s.Total != 2 {
		t.Errorf("total = %d, want 2", s.Total)
	}
	if s.ActiveID() != "A" {
		t.Errorf("active = %q, want A", s.ActiveID())
	}
	if got := queueIDs(s); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("queue = %v, want [B]", got)
	}
	if s.Phase != PhasePrompt {
		t.Errorf("phase = %q, want prompt", s.Phase)
	}
}

func TestBootstrap_AllArchivedIsEmpty(t *testing.T) {
	a := card("A")
	a.Archived = true

	s := Transition(EmptyState(), Bootstrap{DeckID: "d1", Cards: []deck.CardSummary{a}})

	if s.Total != 0 {
		t.Errorf("total = %d, want 0", s.Total)
	}
	if s.Phase != PhaseEmpty {
		t.Errorf("phase = %q, want empty", s.Phase)
	}
	if s.Active != nil {
		t.Error("active should be nil")
	}
}

func TestBootstrap_ClearsCompleted(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, Next{})
	if len(s.Completed) != 1 {
		t.Fatalf("completed = %d, want 1", len(s.Completed))
	}

	s = Transition(s, Bootstrap{DeckID: "d2", Cards: []deck.CardSummary{card("Z")}})
	if len(s.Completed) != 0 {
		t.Errorf("completed = %d, want 0 after rebootstrap", len(s.Completed))
	}
	if s.DeckID != "d2" {
		t.Errorf("deckId = %q, want d2", s.DeckID)
	}
}

func TestAdvanceEvents_IdentityWithoutActive(t *testing.T) {
	empty := EmptyState()
	for _, ev := range []Event{Next{}, MarkLearned{}, BackOfPile{}, Check{}} {
		got := Transition(empty, ev)
		if !reflect.DeepEqual(got, empty) {
			t.Errorf("%T on empty state = %+v, want identity", ev, got)
		}
	}
}

func TestNext_CompletedCardDoesNotReappear(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, Next{Verdict: scoring.VerdictCorrect})

	for _, id := range queueIDs(s) {
		if id == "A" {
			t.Error("completed card A reappeared in queue")
		}
	}
	if s.ActiveID() == "A" {
		t.Error("completed card A became active again")
	}
	if s.Completed[0].Verdict != scoring.VerdictCorrect {
		t.Errorf("verdict = %q, want correct", s.Completed[0].Verdict)
	}
}

func TestMarkLearned_SameMechanicsAsNext(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, MarkLearned{Verdict: scoring.VerdictCorrect})

	if s.ActiveID() != "B" {
		t.Errorf("active = %q, want B", s.ActiveID())
	}
	if s.Completed[0].Action != ActionMarkLearned {
		t.Errorf("action = %q, want markLearned", s.Completed[0].Action)
	}
}

func TestBackOfPile_CardReappearsInQueue(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, BackOfPile{})

	if s.ActiveID() != "B" {
		t.Errorf("active = %q, want B", s.ActiveID())
	}
	if got := queueIDs(s); !reflect.DeepEqual(got, []string{"C", "A"}) {
		t.Errorf("queue = %v, want [C A]", got)
	}
	// The pass is still logged even though the card stays in play.
	if len(s.Completed) != 1 || s.Completed[0].Card.ID != "A" {
		t.Errorf("completed = %+v, want one entry for A", s.Completed)
	}
	if s.Completed[0].Action != ActionBackOfPile {
		t.Errorf("action = %q, want backOfPile", s.Completed[0].Action)
	}
}

func TestBackOfPile_SingleCardComesStraightBack(t *testing.T) {
	s := Transition(EmptyState(), Bootstrap{DeckID: "d1", Cards: []deck.CardSummary{card("A")}})
	s = Transition(s, BackOfPile{})

	if s.ActiveID() != "A" {
		t.Errorf("active = %q, want A again", s.ActiveID())
	}
	if len(s.Queue) != 0 {
		t.Errorf("queue = %v, want empty", queueIDs(s))
	}
	if s.Phase != PhasePrompt {
		t.Errorf("phase = %q, want prompt", s.Phase)
	}
}

func TestSetActive_ParkAndRestore(t *testing.T) {
	original := threeCardState(t)

	parked := Transition(original, SetActive{})
	if parked.Active != nil {
		t.Fatal("active should be nil after parking")
	}
	if got := queueIDs(parked); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("queue = %v, want [A B C]", got)
	}

	restored := Transition(parked, SetActive{CardID: "A"})
	if restored.ActiveID() != "A" {
		t.Errorf("active = %q, want A", restored.ActiveID())
	}
	if got := queueIDs(restored); !reflect.DeepEqual(got, queueIDs(original)) {
		t.Errorf("queue = %v, want original order %v", got, queueIDs(original))
	}
}

func TestSetActive_FromQueuePushesActiveToFront(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, SetActive{CardID: "C"})

	if s.ActiveID() != "C" {
		t.Errorf("active = %q, want C", s.ActiveID())
	}
	if got := queueIDs(s); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("queue = %v, want [A B]", got)
	}
}

func TestSetActive_FromCompletedPreservesHistory(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, Next{}) // A completed, B active

	s = Transition(s, SetActive{CardID: "A"})

	if s.ActiveID() != "A" {
		t.Errorf("active = %q, want A cloned from completed", s.ActiveID())
	}
	if got := queueIDs(s); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("queue = %v, want [B C]", got)
	}
	if len(s.Completed) != 1 {
		t.Errorf("completed = %d, history must be preserved", len(s.Completed))
	}
}

func TestSetActive_UnknownIDIsNoop(t *testing.T) {
	s := threeCardState(t)
	got := Transition(s, SetActive{CardID: "nope"})
	if !reflect.DeepEqual(got, s) {
		t.Errorf("unknown id changed state: %+v", got)
	}
}

func TestSetActive_SameIDNormalizesPhase(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, Check{})
	if s.Phase != PhaseReview {
		t.Fatalf("phase = %q, want review", s.Phase)
	}

	s = Transition(s, SetActive{CardID: "A"})
	if s.ActiveID() != "A" || s.Phase != PhasePrompt {
		t.Errorf("active = %q phase = %q, want A/prompt", s.ActiveID(), s.Phase)
	}
}

func TestCheck_MovesPromptToReview(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, Check{})

	if s.Phase != PhaseReview {
		t.Errorf("phase = %q, want review", s.Phase)
	}
	if s.ActiveID() != "A" || len(s.Queue) != 2 || len(s.Completed) != 0 {
		t.Error("check must change nothing but the phase")
	}
}

func TestSyncCard_Idempotent(t *testing.T) {
	s := threeCardState(t)
	update := deck.CardSummary{ID: "B", Prompt: "updated prompt", Keypoints: []string{"k1"}}

	once := Transition(s, SyncCard{Card: update})
	twice := Transition(once, SyncCard{Card: update})

	if !reflect.DeepEqual(once, twice) {
		t.Error("syncCard is not idempotent")
	}
	if once.Queue[0].Prompt != "updated prompt" {
		t.Errorf("queue[0].Prompt = %q, want updated", once.Queue[0].Prompt)
	}
}

func TestSyncCard_TouchesEveryOccurrence(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, BackOfPile{}) // A in queue and in completed

	s = Transition(s, SyncCard{Card: deck.CardSummary{ID: "A", Prompt: "fresh"}})

	found := 0
	for _, c := range s.Queue {
		if c.ID == "A" && c.Prompt == "fresh" {
			found++
		}
	}
	for _, e := range s.Completed {
		if e.Card.ID == "A" && e.Card.Prompt == "fresh" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("updated occurrences = %d, want 2 (queue + completed)", found)
	}
}

func TestSyncCard_NoMatchReturnsSameState(t *testing.T) {
	s := threeCardState(t)
	got := Transition(s, SyncCard{Card: deck.CardSummary{ID: "zzz", Prompt: "x"}})
	if !reflect.DeepEqual(got, s) {
		t.Error("syncCard with unknown id must not change state")
	}
}

func TestReset_ReturnsEmptyState(t *testing.T) {
	s := threeCardState(t)
	s = Transition(s, Reset{})

	if s.Phase != PhaseEmpty || s.Active != nil || len(s.Queue) != 0 || s.Total != 0 {
		t.Errorf("reset state = %+v, want canonical empty", s)
	}
}

func TestScenario_ThreeCardWalkthrough(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	s := threeCardState(t)
	if s.Total != 3 || !reflect.DeepEqual(queueIDs(s), []string{"B", "C"}) {
		t.Fatalf("bootstrap: active=%s queue=%v total=%d", s.ActiveID(), queueIDs(s), s.Total)
	}

	s = Transition(s, Next{})
	if s.ActiveID() != "B" || !reflect.DeepEqual(queueIDs(s), []string{"C"}) {
		t.Fatalf("after next: active=%s queue=%v", s.ActiveID(), queueIDs(s))
	}
	if len(s.Completed) != 1 || s.Completed[0].Card.ID != "A" || s.Completed[0].Action != ActionNext {
		t.Fatalf("after next: completed=%+v", s.Completed)
	}

	s = Transition(s, BackOfPile{})
	if s.ActiveID() != "C" || !reflect.DeepEqual(queueIDs(s), []string{"B"}) {
		t.Fatalf("after backOfPile: active=%s queue=%v", s.ActiveID(), queueIDs(s))
	}
	if len(s.Completed) != 2 || s.Completed[1].Card.ID != "B" || s.Completed[1].Action != ActionBackOfPile {
		t.Fatalf("after backOfPile: completed=%+v", s.Completed)
	}

	s = Transition(s, Next{})
	s = Transition(s, Next{})
	if s.Active != nil || len(s.Queue) != 0 {
		t.Fatalf("end: active=%v queue=%v", s.Active, queueIDs(s))
	}
	if s.Phase != PhaseComplete {
		t.Errorf("end phase = %q, want complete", s.Phase)
	}
	if len(s.Completed) != 4 {
		t.Errorf("completed length = %d, want 4", len(s.Completed))
	}
	if s.Total != 3 {
		t.Errorf("total = %d, must not shrink", s.Total)
	}
}

func TestPhase_CompleteDistinctFromEmpty(t *testing.T) {
	s := Transition(EmptyState(), Bootstrap{DeckID: "d1", Cards: []deck.CardSummary{card("A")}})
	s = Transition(s, Next{})
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %q, want complete", s.Phase)
	}

	// Phase-normalizing events must not demote complete to empty.
	s = Transition(s, SetActive{})
	if s.Phase != PhaseComplete {
		t.Errorf("phase after setActive(nil) = %q, want complete preserved", s.Phase)
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	s := threeCardState(t)
	before := s.clone()

	_ = Transition(s, Next{})
	_ = Transition(s, BackOfPile{})
	_ = Transition(s, SyncCard{Card: deck.CardSummary{ID: "B", Prompt: "zap"}})

	if !reflect.DeepEqual(s, before) {
		t.Error("Transition mutated its input state")
	}
}
