package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type TranscriptFile struct {
	ent.Schema
}

func (TranscriptFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transcript_files"},
	}
}

func (TranscriptFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("transcript_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// ordered {speaker?, start?, text} segments as produced by the transcriber
		field.JSON("transcript_segments", json.RawMessage{}).Optional(),
		field.String("language").Optional().Nillable(),
		field.Float("duration_seconds").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (TranscriptFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", ProcessingSession.Type),
		edge.To("results", ExtractionResult.Type),
		edge.To("summarizations", Summarization.Type),
	}
}

func (TranscriptFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uploaded_at"),
	}
}
