// Code generated by ent, DO NOT EDIT.

package extractiondefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractiondefinition type in the database.
	Label = "extraction_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldJSONKey holds the string denoting the json_key field in the database.
	FieldJSONKey = "json_key"
	// FieldJSONSchema holds the string denoting the json_schema field in the database.
	FieldJSONSchema = "json_schema"
	// FieldAiInstructions holds the string denoting the ai_instructions field in the database.
	FieldAiInstructions = "ai_instructions"
	// FieldOutputType holds the string denoting the output_type field in the database.
	FieldOutputType = "output_type"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// Table holds the table name of the extractiondefinition in the database.
	Table = "extraction_definitions"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "extraction_results"
	// ResultsInverseTable is the table name for the ExtractionResult entity.
	// It exists in this package in order to avoid circular dependency with the "extractionresult" package.
	ResultsInverseTable = "extraction_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "definition_id"
)

// Columns holds all SQL columns for extractiondefinition fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldJSONKey,
	FieldJSONSchema,
	FieldAiInstructions,
	FieldOutputType,
	FieldCategory,
	FieldIsActive,
	FieldSortOrder,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// JSONKeyValidator is a validator for the "json_key" field. It is called by the builders before save.
	JSONKeyValidator func(string) error
	// AiInstructionsValidator is a validator for the "ai_instructions" field. It is called by the builders before save.
	AiInstructionsValidator func(string) error
	// OutputTypeValidator is a validator for the "output_type" field. It is called by the builders before save.
	OutputTypeValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByJSONKey orders the results by the json_key field.
func ByJSONKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJSONKey, opts...).ToFunc()
}

// ByAiInstructions orders the results by the ai_instructions field.
func ByAiInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiInstructions, opts...).ToFunc()
}

// ByOutputType orders the results by the output_type field.
func ByOutputType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputType, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
