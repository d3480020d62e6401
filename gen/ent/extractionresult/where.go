// Code generated by ent, DO NOT EDIT.

package extractionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldFileID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldSessionID, v))
}

// DefinitionID applies equality check predicate on the "definition_id" field. It's identical to DefinitionIDEQ.
func DefinitionID(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldDefinitionID, v))
}

// ExtractionType applies equality check predicate on the "extraction_type" field. It's identical to ExtractionTypeEQ.
func ExtractionType(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldExtractionType, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldConfidence, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldCreatedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldFileID, vs...))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// DefinitionIDEQ applies the EQ predicate on the "definition_id" field.
func DefinitionIDEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldDefinitionID, v))
}

// DefinitionIDNEQ applies the NEQ predicate on the "definition_id" field.
func DefinitionIDNEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldDefinitionID, v))
}

// DefinitionIDIn applies the In predicate on the "definition_id" field.
func DefinitionIDIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldDefinitionID, vs...))
}

// DefinitionIDNotIn applies the NotIn predicate on the "definition_id" field.
func DefinitionIDNotIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldDefinitionID, vs...))
}

// ExtractionTypeEQ applies the EQ predicate on the "extraction_type" field.
func ExtractionTypeEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldExtractionType, v))
}

// ExtractionTypeNEQ applies the NEQ predicate on the "extraction_type" field.
func ExtractionTypeNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldExtractionType, v))
}

// ExtractionTypeIn applies the In predicate on the "extraction_type" field.
func ExtractionTypeIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldExtractionType, vs...))
}

// ExtractionTypeNotIn applies the NotIn predicate on the "extraction_type" field.
func ExtractionTypeNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldExtractionType, vs...))
}

// ExtractionTypeGT applies the GT predicate on the "extraction_type" field.
func ExtractionTypeGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldExtractionType, v))
}

// ExtractionTypeGTE applies the GTE predicate on the "extraction_type" field.
func ExtractionTypeGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldExtractionType, v))
}

// ExtractionTypeLT applies the LT predicate on the "extraction_type" field.
func ExtractionTypeLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldExtractionType, v))
}

// ExtractionTypeLTE applies the LTE predicate on the "extraction_type" field.
func ExtractionTypeLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldExtractionType, v))
}

// ExtractionTypeContains applies the Contains predicate on the "extraction_type" field.
func ExtractionTypeContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldExtractionType, v))
}

// ExtractionTypeHasPrefix applies the HasPrefix predicate on the "extraction_type" field.
func ExtractionTypeHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldExtractionType, v))
}

// ExtractionTypeHasSuffix applies the HasSuffix predicate on the "extraction_type" field.
func ExtractionTypeHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldExtractionType, v))
}

// ExtractionTypeEqualFold applies the EqualFold predicate on the "extraction_type" field.
func ExtractionTypeEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldExtractionType, v))
}

// ExtractionTypeContainsFold applies the ContainsFold predicate on the "extraction_type" field.
func ExtractionTypeContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldExtractionType, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldConfidence))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIsNil applies the IsNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldProcessingTimeMs))
}

// ProcessingTimeMsNotNil applies the NotNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldProcessingTimeMs))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.TranscriptFile) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ProcessingSession) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDefinition applies the HasEdge predicate on the "definition" edge.
func HasDefinition() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefinitionWith applies the HasEdge predicate on the "definition" edge with a given conditions (other predicates).
func HasDefinitionWith(preds ...predicate.ExtractionDefinition) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newDefinitionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.NotPredicates(p))
}
