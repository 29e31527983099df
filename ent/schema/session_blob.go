package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionBlob holds the serialized study session under a namespaced key.
// There is at most one row per key; saving replaces the previous blob.
type SessionBlob struct {
	ent.Schema
}

func (SessionBlob) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Namespaced storage key, e.g. recallo:session"),
		field.String("version").
			NotEmpty().
			Comment("Snapshot format version tag"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized session snapshot"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("When the blob was last written; drives staleness expiry"),
	}
}

func (SessionBlob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
