package store

import (
	"slices"
	"time"

	"golang.org/x/mod/semver"

	"github.com/arvindh/recallo/internal/session"
)

// blobMigration upgrades a session blob written at `from` to the next
// format version.
type blobMigration struct {
	from  string
	apply func(map[string]any) map[string]any
}

var sessionMigrations = []blobMigration{
	{from: "v1", apply: migrateSessionV1},
}

// migrateSessionData upgrades blob data from the given version to the
// current snapshot format, applying migration steps in semver order.
// Returns false when the version is invalid, unknown, or newer than
// this build writes.
func migrateSessionData(version string, data map[string]any) (map[string]any, bool) {
	if !semver.IsValid(version) {
		return nil, false
	}
	if semver.Compare(version, session.SnapshotVersion) > 0 {
		return nil, false
	}
	if semver.Compare(version, session.SnapshotVersion) < 0 &&
		!hasMigrationFrom(version) {
		return nil, false
	}

	steps := slices.Clone(sessionMigrations)
	slices.SortFunc(steps, func(a, b blobMigration) int {
		return semver.Compare(a.from, b.from)
	})

	for _, m := range steps {
		if semver.Compare(m.from, version) >= 0 {
			data = m.apply(data)
		}
	}
	return data, true
}

func hasMigrationFrom(version string) bool {
	for _, m := range sessionMigrations {
		if m.from == version {
			return true
		}
	}
	return false
}

// migrateSessionV1 renames the attempt cache key and introduces the
// session start time, which v1 blobs never carried. The start time is
// stamped at migration so the 24h staleness clock begins now instead of
// expiring the blob immediately.
func migrateSessionV1(data map[string]any) map[string]any {
	if attempts, ok := data["attempts"]; ok {
		data["attemptsByCard"] = attempts
		delete(data, "attempts")
	}
	if _, ok := data["sessionStartedAt"]; !ok {
		data["sessionStartedAt"] = float64(time.Now().UnixMilli())
	}
	return data
}
