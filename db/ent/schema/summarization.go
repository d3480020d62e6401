package schema

import (
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

type Summarization struct{ ent.Schema }

func (Summarization) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "summarizations"},
	}
}

func (Summarization) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("session_id", uuid.UUID{}),
		field.UUID("template_id", uuid.UUID{}).Optional().Nillable(),
		field.String("model").NotEmpty(),
		field.String("prompt").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("content").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Summarization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", TranscriptFile.Type).
			Ref("summarizations").
			Field("file_id").
			Unique().
			Required(),
		edge.From("template", SummarizationPrompt.Type).
			Ref("summarizations").
			Field("template_id").
			Unique(),
	}
}

func (Summarization) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "created_at"),
		index.Fields("session_id"),
	}
}
