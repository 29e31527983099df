package deck

import (
	"testing"
	"time"
)

func TestMerge_OverwritesPresentFields(t *testing.T) {
	existing := CardSummary{
		ID:        "c1",
		Prompt:    "What is a goroutine?",
		Answer:    "A lightweight thread managed by the Go runtime",
		Keypoints: []string{"lightweight", "runtime scheduled"},
	}

	merged := existing.Merge(CardSummary{
		ID:     "c1",
		Answer: "A lightweight thread multiplexed onto OS threads",
	})

	if merged.Prompt != existing.Prompt {
		t.Errorf("prompt = %q, want unchanged", merged.Prompt)
	}
	if merged.Answer != "A lightweight thread multiplexed onto OS threads" {
		t.Errorf("answer = %q, want overwritten", merged.Answer)
	}
	if len(merged.Keypoints) != 2 {
		t.Errorf("keypoints = %v, want kept", merged.Keypoints)
	}
}

func TestMerge_IncomingKeypointsWin(t *testing.T) {
	existing := CardSummary{ID: "c1", Keypoints: []string{"old"}}
	merged := existing.Merge(CardSummary{ID: "c1", Keypoints: []string{"new", "newer"}})

	if len(merged.Keypoints) != 2 || merged.Keypoints[0] != "new" {
		t.Errorf("keypoints = %v, want incoming to win", merged.Keypoints)
	}
}

func TestMerge_KeepsScheduleWhenAbsent(t *testing.T) {
	sched := &Schedule{DueAt: time.Now(), Interval: 3, Ease: 2.5, Streak: 2}
	existing := CardSummary{ID: "c1", Schedule: sched}

	merged := existing.Merge(CardSummary{ID: "c1", Prompt: "updated"})

	if merged.Schedule != sched {
		t.Error("schedule should be kept when incoming card has none")
	}
}

func TestCardCount_SkipsArchived(t *testing.T) {
	d := Deck{Cards: []CardSummary{
		{ID: "a"},
		{ID: "b", Archived: true},
		{ID: "c"},
	}}
	if got := d.CardCount(); got != 2 {
		t.Errorf("CardCount() = %d, want 2", got)
	}
}

func TestDecode_ValidFile(t *testing.T) {
	data := []byte(`{
		"title": "Go Basics",
		"description": "Core language questions",
		"cards": [
			{"prompt": "What is a channel?", "answer": "A typed conduit for communication", "keypoints": ["typed", "communication"]}
		]
	}`)

	d, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Title != "Go Basics" {
		t.Errorf("title = %q", d.Title)
	}
	if len(d.Cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(d.Cards))
	}
	if len(d.Cards[0].Keypoints) != 2 {
		t.Errorf("keypoints = %v", d.Cards[0].Keypoints)
	}
}

func TestDecode_RejectsMissingTitle(t *testing.T) {
	_, err := Decode([]byte(`{"cards": []}`))
	if err == nil {
		t.Fatal("expected validation error for missing title")
	}
}

func TestDecode_RejectsCardWithoutAnswer(t *testing.T) {
	_, err := Decode([]byte(`{"title": "x", "cards": [{"prompt": "p"}]}`))
	if err == nil {
		t.Fatal("expected validation error for card without answer")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	d := &Deck{
		ID:    "d1",
		Title: "Networking",
		Cards: []CardSummary{
			{ID: "c1", Prompt: "What is TCP?", Answer: "A reliable byte stream protocol", Keypoints: []string{"reliable", "ordered"}},
		},
	}

	data, err := Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Cards[0].Prompt != d.Cards[0].Prompt {
		t.Errorf("round trip prompt = %q", got.Cards[0].Prompt)
	}
}
