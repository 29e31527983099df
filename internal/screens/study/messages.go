package study

import (
	"github.com/arvindh/recallo/internal/scoring"
)

// sessionReadyMsg is sent when the study session has been bootstrapped,
// or resumed from a restored snapshot.
type sessionReadyMsg struct {
	Resumed bool
	Err     error
}

// scoredMsg is sent when a submitted answer has been scored.
type scoredMsg struct {
	Rec *scoring.AttemptRecord
	Err error
}

// storeChangedMsg is sent when the session store signals an update.
type storeChangedMsg struct{}

// historyMsg is sent when attempt history for a card has been fetched.
type historyMsg struct {
	CardID   string
	Attempts []scoring.AttemptRecord
}
