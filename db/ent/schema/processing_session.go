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
	"github.com/jide-alade/voicenotes-tracker/constants"
	"github.com/jide-alade/voicenotes-tracker/db/ent/schema/utils"
)

type ProcessingSession struct{ ent.Schema }

func (ProcessingSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_sessions"},
	}
}

func (ProcessingSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("summarization_prompt_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("extraction_selection", []uuid.UUID{}),
		field.String("system_prompt").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ai_response").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("parsed_response", json.RawMessage{}).Optional(),
		field.String("status").
			Default(string(constants.SessionPending)).
			Validate(utils.EnumValidator(constants.SessionStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Int64("processing_time_ms").Default(0),
		field.Int("token_count").Optional().Nillable(),
		field.String("model").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (ProcessingSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", TranscriptFile.Type).
			Ref("sessions").
			Field("file_id").
			Unique().
			Required(),
		edge.To("results", ExtractionResult.Type),
	}
}

func (ProcessingSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "status", "created_at"),
	}
}
