package store

import (
	"testing"

	"github.com/arvindh/recallo/internal/session"
)

func TestMigrateSessionData_CurrentVersionPassesThrough(t *testing.T) {
	in := map[string]any{"attemptsByCard": map[string]any{}, "sessionStartedAt": float64(99)}
	out, ok := migrateSessionData(session.SnapshotVersion, in)
	if !ok {
		t.Fatal("current version must be accepted")
	}
	if out["sessionStartedAt"] != float64(99) {
		t.Errorf("data changed: %+v", out)
	}
}

func TestMigrateSessionData_V1Upgraded(t *testing.T) {
	in := map[string]any{
		"attempts": map[string]any{"c1": []any{}},
	}
	out, ok := migrateSessionData("v1", in)
	if !ok {
		t.Fatal("v1 must be migratable")
	}
	if _, exists := out["attempts"]; exists {
		t.Error("old attempts key should be gone")
	}
	if _, exists := out["attemptsByCard"]; !exists {
		t.Error("attemptsByCard should be present")
	}
	started, isFloat := out["sessionStartedAt"].(float64)
	if !isFloat || started <= 0 {
		t.Errorf("sessionStartedAt = %v, want stamped at migration", out["sessionStartedAt"])
	}
}

func TestMigrateSessionData_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"newer than current", "v9"},
		{"not semver", "version-one"},
		{"unknown older", "v0.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := migrateSessionData(tt.version, map[string]any{}); ok {
				t.Errorf("version %q should be rejected", tt.version)
			}
		})
	}
}
