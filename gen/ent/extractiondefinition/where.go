// Code generated by ent, DO NOT EDIT.

package extractiondefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldName, v))
}

// JSONKey applies equality check predicate on the "json_key" field. It's identical to JSONKeyEQ.
func JSONKey(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldJSONKey, v))
}

// AiInstructions applies equality check predicate on the "ai_instructions" field. It's identical to AiInstructionsEQ.
func AiInstructions(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldAiInstructions, v))
}

// OutputType applies equality check predicate on the "output_type" field. It's identical to OutputTypeEQ.
func OutputType(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldOutputType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldCategory, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldIsActive, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldSortOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContainsFold(FieldName, v))
}

// JSONKeyEQ applies the EQ predicate on the "json_key" field.
func JSONKeyEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldJSONKey, v))
}

// JSONKeyNEQ applies the NEQ predicate on the "json_key" field.
func JSONKeyNEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldJSONKey, v))
}

// JSONKeyIn applies the In predicate on the "json_key" field.
func JSONKeyIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldJSONKey, vs...))
}

// JSONKeyNotIn applies the NotIn predicate on the "json_key" field.
func JSONKeyNotIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldJSONKey, vs...))
}

// JSONKeyGT applies the GT predicate on the "json_key" field.
func JSONKeyGT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldJSONKey, v))
}

// JSONKeyGTE applies the GTE predicate on the "json_key" field.
func JSONKeyGTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldJSONKey, v))
}

// JSONKeyLT applies the LT predicate on the "json_key" field.
func JSONKeyLT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldJSONKey, v))
}

// JSONKeyLTE applies the LTE predicate on the "json_key" field.
func JSONKeyLTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldJSONKey, v))
}

// JSONKeyContains applies the Contains predicate on the "json_key" field.
func JSONKeyContains(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContains(FieldJSONKey, v))
}

// JSONKeyHasPrefix applies the HasPrefix predicate on the "json_key" field.
func JSONKeyHasPrefix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasPrefix(FieldJSONKey, v))
}

// JSONKeyHasSuffix applies the HasSuffix predicate on the "json_key" field.
func JSONKeyHasSuffix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasSuffix(FieldJSONKey, v))
}

// JSONKeyEqualFold applies the EqualFold predicate on the "json_key" field.
func JSONKeyEqualFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEqualFold(FieldJSONKey, v))
}

// JSONKeyContainsFold applies the ContainsFold predicate on the "json_key" field.
func JSONKeyContainsFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContainsFold(FieldJSONKey, v))
}

// JSONSchemaIsNil applies the IsNil predicate on the "json_schema" field.
func JSONSchemaIsNil() predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIsNull(FieldJSONSchema))
}

// JSONSchemaNotNil applies the NotNil predicate on the "json_schema" field.
func JSONSchemaNotNil() predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotNull(FieldJSONSchema))
}

// AiInstructionsEQ applies the EQ predicate on the "ai_instructions" field.
func AiInstructionsEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldAiInstructions, v))
}

// AiInstructionsNEQ applies the NEQ predicate on the "ai_instructions" field.
func AiInstructionsNEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldAiInstructions, v))
}

// AiInstructionsIn applies the In predicate on the "ai_instructions" field.
func AiInstructionsIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldAiInstructions, vs...))
}

// AiInstructionsNotIn applies the NotIn predicate on the "ai_instructions" field.
func AiInstructionsNotIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldAiInstructions, vs...))
}

// AiInstructionsGT applies the GT predicate on the "ai_instructions" field.
func AiInstructionsGT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldAiInstructions, v))
}

// AiInstructionsGTE applies the GTE predicate on the "ai_instructions" field.
func AiInstructionsGTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldAiInstructions, v))
}

// AiInstructionsLT applies the LT predicate on the "ai_instructions" field.
func AiInstructionsLT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldAiInstructions, v))
}

// AiInstructionsLTE applies the LTE predicate on the "ai_instructions" field.
func AiInstructionsLTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldAiInstructions, v))
}

// AiInstructionsContains applies the Contains predicate on the "ai_instructions" field.
func AiInstructionsContains(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContains(FieldAiInstructions, v))
}

// AiInstructionsHasPrefix applies the HasPrefix predicate on the "ai_instructions" field.
func AiInstructionsHasPrefix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasPrefix(FieldAiInstructions, v))
}

// AiInstructionsHasSuffix applies the HasSuffix predicate on the "ai_instructions" field.
func AiInstructionsHasSuffix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasSuffix(FieldAiInstructions, v))
}

// AiInstructionsEqualFold applies the EqualFold predicate on the "ai_instructions" field.
func AiInstructionsEqualFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEqualFold(FieldAiInstructions, v))
}

// AiInstructionsContainsFold applies the ContainsFold predicate on the "ai_instructions" field.
func AiInstructionsContainsFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContainsFold(FieldAiInstructions, v))
}

// OutputTypeEQ applies the EQ predicate on the "output_type" field.
func OutputTypeEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldOutputType, v))
}

// OutputTypeNEQ applies the NEQ predicate on the "output_type" field.
func OutputTypeNEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldOutputType, v))
}

// OutputTypeIn applies the In predicate on the "output_type" field.
func OutputTypeIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldOutputType, vs...))
}

// OutputTypeNotIn applies the NotIn predicate on the "output_type" field.
func OutputTypeNotIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldOutputType, vs...))
}

// OutputTypeGT applies the GT predicate on the "output_type" field.
func OutputTypeGT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldOutputType, v))
}

// OutputTypeGTE applies the GTE predicate on the "output_type" field.
func OutputTypeGTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldOutputType, v))
}

// OutputTypeLT applies the LT predicate on the "output_type" field.
func OutputTypeLT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldOutputType, v))
}

// OutputTypeLTE applies the LTE predicate on the "output_type" field.
func OutputTypeLTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldOutputType, v))
}

// OutputTypeContains applies the Contains predicate on the "output_type" field.
func OutputTypeContains(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContains(FieldOutputType, v))
}

// OutputTypeHasPrefix applies the HasPrefix predicate on the "output_type" field.
func OutputTypeHasPrefix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasPrefix(FieldOutputType, v))
}

// OutputTypeHasSuffix applies the HasSuffix predicate on the "output_type" field.
func OutputTypeHasSuffix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasSuffix(FieldOutputType, v))
}

// OutputTypeEqualFold applies the EqualFold predicate on the "output_type" field.
func OutputTypeEqualFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEqualFold(FieldOutputType, v))
}

// OutputTypeContainsFold applies the ContainsFold predicate on the "output_type" field.
func OutputTypeContainsFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContainsFold(FieldOutputType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldContainsFold(FieldCategory, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldIsActive, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldSortOrder, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ExtractionResult) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionDefinition) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionDefinition) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionDefinition) predicate.ExtractionDefinition {
	return predicate.ExtractionDefinition(sql.NotPredicates(p))
}
