// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "card_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "verdict", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "cosine", Type: field.TypeFloat64, Default: 0},
		{Name: "coverage", Type: field.TypeFloat64, Default: 0},
		{Name: "missing_keypoints", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "expected_answer", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "keypoints", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_card_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
			{
				Name:    "attempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[13]},
			},
		},
	}
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "keypoints", Type: field.TypeJSON, Nullable: true},
		{Name: "alternative_answers", Type: field.TypeJSON, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "interval", Type: field.TypeInt, Default: 0},
		{Name: "ease", Type: field.TypeFloat64, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_quality", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_card_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1]},
			},
			{
				Name:    "card_deck_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[2]},
			},
			{
				Name:    "card_archived",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[7]},
			},
		},
	}
	// DecksColumns holds the columns for the "decks" table.
	DecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deck_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DecksTable holds the schema information for the "decks" table.
	DecksTable = &schema.Table{
		Name:       "decks",
		Columns:    DecksColumns,
		PrimaryKey: []*schema.Column{DecksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deck_deck_id",
				Unique:  false,
				Columns: []*schema.Column{DecksColumns[1]},
			},
		},
	}
	// LlmCallEventsColumns holds the columns for the "llm_call_events" table.
	LlmCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCallEventsTable holds the schema information for the "llm_call_events" table.
	LlmCallEventsTable = &schema.Table{
		Name:       "llm_call_events",
		Columns:    LlmCallEventsColumns,
		PrimaryKey: []*schema.Column{LlmCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcallevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[1]},
			},
			{
				Name:    "llmcallevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[3]},
			},
			{
				Name:    "llmcallevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[7]},
			},
		},
	}
	// SessionBlobsColumns holds the columns for the "session_blobs" table.
	SessionBlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionBlobsTable holds the schema information for the "session_blobs" table.
	SessionBlobsTable = &schema.Table{
		Name:       "session_blobs",
		Columns:    SessionBlobsColumns,
		PrimaryKey: []*schema.Column{SessionBlobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionblob_key",
				Unique:  false,
				Columns: []*schema.Column{SessionBlobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		CardsTable,
		DecksTable,
		LlmCallEventsTable,
		SessionBlobsTable,
	}
)

func init() {
}
