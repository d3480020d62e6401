// Code generated by ent, DO NOT EDIT.

package extractionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionresult type in the database.
	Label = "extraction_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDefinitionID holds the string denoting the definition_id field in the database.
	FieldDefinitionID = "definition_id"
	// FieldExtractionType holds the string denoting the extraction_type field in the database.
	FieldExtractionType = "extraction_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeDefinition holds the string denoting the definition edge name in mutations.
	EdgeDefinition = "definition"
	// Table holds the table name of the extractionresult in the database.
	Table = "extraction_results"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "extraction_results"
	// FileInverseTable is the table name for the TranscriptFile entity.
	// It exists in this package in order to avoid circular dependency with the "transcriptfile" package.
	FileInverseTable = "transcript_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "extraction_results"
	// SessionInverseTable is the table name for the ProcessingSession entity.
	// It exists in this package in order to avoid circular dependency with the "processingsession" package.
	SessionInverseTable = "processing_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// DefinitionTable is the table that holds the definition relation/edge.
	DefinitionTable = "extraction_results"
	// DefinitionInverseTable is the table name for the ExtractionDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "extractiondefinition" package.
	DefinitionInverseTable = "extraction_definitions"
	// DefinitionColumn is the table column denoting the definition relation/edge.
	DefinitionColumn = "definition_id"
)

// Columns holds all SQL columns for extractionresult fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldSessionID,
	FieldDefinitionID,
	FieldExtractionType,
	FieldContent,
	FieldConfidence,
	FieldProcessingTimeMs,
	FieldModel,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExtractionTypeValidator is a validator for the "extraction_type" field. It is called by the builders before save.
	ExtractionTypeValidator func(string) error
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDefinitionID orders the results by the definition_id field.
func ByDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefinitionID, opts...).ToFunc()
}

// ByExtractionType orders the results by the extraction_type field.
func ByExtractionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionType, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByDefinitionField orders the results by definition field.
func ByDefinitionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefinitionStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newDefinitionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefinitionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
	)
}
