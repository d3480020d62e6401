package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type SummarizationPrompt struct{ ent.Schema }

func (SummarizationPrompt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "summarization_prompts"},
	}
}

func (SummarizationPrompt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("prompt").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_default").Default(false),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SummarizationPrompt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("summarizations", Summarization.Type),
	}
}
