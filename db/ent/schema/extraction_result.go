package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ExtractionResult struct{ ent.Schema }

func (ExtractionResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_results"},
	}
}

func (ExtractionResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("session_id", uuid.UUID{}),
		field.UUID("definition_id", uuid.UUID{}),
		field.String("extraction_type").NotEmpty(),
		field.JSON("content", json.RawMessage{}),
		field.Float32("confidence").Optional().Nillable(),
		field.Int64("processing_time_ms").Optional().Nillable(),
		field.String("model").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractionResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", TranscriptFile.Type).
			Ref("results").
			Field("file_id").
			Unique().
			Required(),
		edge.From("session", ProcessingSession.Type).
			Ref("results").
			Field("session_id").
			Unique().
			Required(),
		edge.From("definition", ExtractionDefinition.Type).
			Ref("results").
			Field("definition_id").
			Unique().
			Required(),
	}
}

func (ExtractionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "created_at"),
		index.Fields("session_id"),
		index.Fields("definition_id"),
	}
}
