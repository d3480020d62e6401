// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionDefinitionsColumns holds the columns for the "extraction_definitions" table.
	ExtractionDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "json_key", Type: field.TypeString, Unique: true},
		{Name: "json_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "ai_instructions", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "output_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: "extraction"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExtractionDefinitionsTable holds the schema information for the "extraction_definitions" table.
	ExtractionDefinitionsTable = &schema.Table{
		Name:       "extraction_definitions",
		Columns:    ExtractionDefinitionsColumns,
		PrimaryKey: []*schema.Column{ExtractionDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractiondefinition_is_active_sort_order",
				Unique:  false,
				Columns: []*schema.Column{ExtractionDefinitionsColumns[7], ExtractionDefinitionsColumns[8]},
			},
		},
	}
	// ExtractionResultsColumns holds the columns for the "extraction_results" table.
	ExtractionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "extraction_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "definition_id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractionResultsTable holds the schema information for the "extraction_results" table.
	ExtractionResultsTable = &schema.Table{
		Name:       "extraction_results",
		Columns:    ExtractionResultsColumns,
		PrimaryKey: []*schema.Column{ExtractionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_results_extraction_definitions_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[7]},
				RefColumns: []*schema.Column{ExtractionDefinitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extraction_results_processing_sessions_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[8]},
				RefColumns: []*schema.Column{ProcessingSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extraction_results_transcript_files_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[9]},
				RefColumns: []*schema.Column{TranscriptFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionresult_file_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[9], ExtractionResultsColumns[6]},
			},
			{
				Name:    "extractionresult_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[8]},
			},
			{
				Name:    "extractionresult_definition_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[7]},
			},
		},
	}
	// ProcessingSessionsColumns holds the columns for the "processing_sessions" table.
	ProcessingSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "summarization_prompt_id", Type: field.TypeUUID, Nullable: true},
		{Name: "extraction_selection", Type: field.TypeJSON},
		{Name: "system_prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ai_response", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "parsed_response", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ProcessingSessionsTable holds the schema information for the "processing_sessions" table.
	ProcessingSessionsTable = &schema.Table{
		Name:       "processing_sessions",
		Columns:    ProcessingSessionsColumns,
		PrimaryKey: []*schema.Column{ProcessingSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_sessions_transcript_files_sessions",
				Columns:    []*schema.Column{ProcessingSessionsColumns[13]},
				RefColumns: []*schema.Column{TranscriptFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingsession_file_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingSessionsColumns[13], ProcessingSessionsColumns[6], ProcessingSessionsColumns[11]},
			},
		},
	}
	// SummarizationsColumns holds the columns for the "summarizations" table.
	SummarizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// SummarizationsTable holds the schema information for the "summarizations" table.
	SummarizationsTable = &schema.Table{
		Name:       "summarizations",
		Columns:    SummarizationsColumns,
		PrimaryKey: []*schema.Column{SummarizationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summarizations_summarization_prompts_summarizations",
				Columns:    []*schema.Column{SummarizationsColumns[6]},
				RefColumns: []*schema.Column{SummarizationPromptsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "summarizations_transcript_files_summarizations",
				Columns:    []*schema.Column{SummarizationsColumns[7]},
				RefColumns: []*schema.Column{TranscriptFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summarization_file_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SummarizationsColumns[7], SummarizationsColumns[5]},
			},
			{
				Name:    "summarization_session_id",
				Unique:  false,
				Columns: []*schema.Column{SummarizationsColumns[1]},
			},
		},
	}
	// SummarizationPromptsColumns holds the columns for the "summarization_prompts" table.
	SummarizationPromptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SummarizationPromptsTable holds the schema information for the "summarization_prompts" table.
	SummarizationPromptsTable = &schema.Table{
		Name:       "summarization_prompts",
		Columns:    SummarizationPromptsColumns,
		PrimaryKey: []*schema.Column{SummarizationPromptsColumns[0]},
	}
	// TranscriptFilesColumns holds the columns for the "transcript_files" table.
	TranscriptFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "transcript_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "transcript_segments", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// TranscriptFilesTable holds the schema information for the "transcript_files" table.
	TranscriptFilesTable = &schema.Table{
		Name:       "transcript_files",
		Columns:    TranscriptFilesColumns,
		PrimaryKey: []*schema.Column{TranscriptFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionDefinitionsTable,
		ExtractionResultsTable,
		ProcessingSessionsTable,
		SummarizationsTable,
		SummarizationPromptsTable,
		TranscriptFilesTable,
	}
)

func init() {
	ExtractionDefinitionsTable.Annotation = &entsql.Annotation{
		Table: "extraction_definitions",
	}
	ExtractionResultsTable.ForeignKeys[0].RefTable = ExtractionDefinitionsTable
	ExtractionResultsTable.ForeignKeys[1].RefTable = ProcessingSessionsTable
	ExtractionResultsTable.ForeignKeys[2].RefTable = TranscriptFilesTable
	ExtractionResultsTable.Annotation = &entsql.Annotation{
		Table: "extraction_results",
	}
	ProcessingSessionsTable.ForeignKeys[0].RefTable = TranscriptFilesTable
	ProcessingSessionsTable.Annotation = &entsql.Annotation{
		Table: "processing_sessions",
	}
	SummarizationsTable.ForeignKeys[0].RefTable = SummarizationPromptsTable
	SummarizationsTable.ForeignKeys[1].RefTable = TranscriptFilesTable
	SummarizationsTable.Annotation = &entsql.Annotation{
		Table: "summarizations",
	}
	SummarizationPromptsTable.Annotation = &entsql.Annotation{
		Table: "summarization_prompts",
	}
	TranscriptFilesTable.Annotation = &entsql.Annotation{
		Table: "transcript_files",
	}
}
