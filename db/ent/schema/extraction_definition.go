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

type ExtractionDefinition struct{ ent.Schema }

func (ExtractionDefinition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_definitions"},
	}
}

func (ExtractionDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// binding name in the composed schema and the parsed response
		field.String("json_key").NotEmpty().Unique(),
		field.JSON("json_schema", json.RawMessage{}).Optional(),
		field.String("ai_instructions").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("output_type").
			Validate(utils.EnumValidator(constants.OutputTypes...)),
		field.String("category").
			Default(string(constants.CategoryExtraction)).
			Validate(utils.EnumValidator(constants.TemplateCategories...)),
		field.Bool("is_active").Default(true),
		field.Int("sort_order").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("results", ExtractionResult.Type),
	}
}

func (ExtractionDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active", "sort_order"),
	}
}
