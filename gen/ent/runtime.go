// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/db/ent/schema"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractiondefinitionFields := schema.ExtractionDefinition{}.Fields()
	_ = extractiondefinitionFields
	// extractiondefinitionDescName is the schema descriptor for name field.
	extractiondefinitionDescName := extractiondefinitionFields[1].Descriptor()
	// extractiondefinition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	extractiondefinition.NameValidator = extractiondefinitionDescName.Validators[0].(func(string) error)
	// extractiondefinitionDescJSONKey is the schema descriptor for json_key field.
	extractiondefinitionDescJSONKey := extractiondefinitionFields[2].Descriptor()
	// extractiondefinition.JSONKeyValidator is a validator for the "json_key" field. It is called by the builders before save.
	extractiondefinition.JSONKeyValidator = extractiondefinitionDescJSONKey.Validators[0].(func(string) error)
	// extractiondefinitionDescAiInstructions is the schema descriptor for ai_instructions field.
	extractiondefinitionDescAiInstructions := extractiondefinitionFields[4].Descriptor()
	// extractiondefinition.AiInstructionsValidator is a validator for the "ai_instructions" field. It is called by the builders before save.
	extractiondefinition.AiInstructionsValidator = extractiondefinitionDescAiInstructions.Validators[0].(func(string) error)
	// extractiondefinitionDescOutputType is the schema descriptor for output_type field.
	extractiondefinitionDescOutputType := extractiondefinitionFields[5].Descriptor()
	// extractiondefinition.OutputTypeValidator is a validator for the "output_type" field. It is called by the builders before save.
	extractiondefinition.OutputTypeValidator = extractiondefinitionDescOutputType.Validators[0].(func(string) error)
	// extractiondefinitionDescCategory is the schema descriptor for category field.
	extractiondefinitionDescCategory := extractiondefinitionFields[6].Descriptor()
	// extractiondefinition.DefaultCategory holds the default value on creation for the category field.
	extractiondefinition.DefaultCategory = extractiondefinitionDescCategory.Default.(string)
	// extractiondefinition.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	extractiondefinition.CategoryValidator = extractiondefinitionDescCategory.Validators[0].(func(string) error)
	// extractiondefinitionDescIsActive is the schema descriptor for is_active field.
	extractiondefinitionDescIsActive := extractiondefinitionFields[7].Descriptor()
	// extractiondefinition.DefaultIsActive holds the default value on creation for the is_active field.
	extractiondefinition.DefaultIsActive = extractiondefinitionDescIsActive.Default.(bool)
	// extractiondefinitionDescSortOrder is the schema descriptor for sort_order field.
	extractiondefinitionDescSortOrder := extractiondefinitionFields[8].Descriptor()
	// extractiondefinition.DefaultSortOrder holds the default value on creation for the sort_order field.
	extractiondefinition.DefaultSortOrder = extractiondefinitionDescSortOrder.Default.(int)
	// extractiondefinitionDescCreatedAt is the schema descriptor for created_at field.
	extractiondefinitionDescCreatedAt := extractiondefinitionFields[9].Descriptor()
	// extractiondefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractiondefinition.DefaultCreatedAt = extractiondefinitionDescCreatedAt.Default.(func() time.Time)
	// extractiondefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	extractiondefinitionDescUpdatedAt := extractiondefinitionFields[10].Descriptor()
	// extractiondefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractiondefinition.DefaultUpdatedAt = extractiondefinitionDescUpdatedAt.Default.(func() time.Time)
	// extractiondefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractiondefinition.UpdateDefaultUpdatedAt = extractiondefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractiondefinitionDescID is the schema descriptor for id field.
	extractiondefinitionDescID := extractiondefinitionFields[0].Descriptor()
	// extractiondefinition.DefaultID holds the default value on creation for the id field.
	extractiondefinition.DefaultID = extractiondefinitionDescID.Default.(func() uuid.UUID)
	extractionresultFields := schema.ExtractionResult{}.Fields()
	_ = extractionresultFields
	// extractionresultDescExtractionType is the schema descriptor for extraction_type field.
	extractionresultDescExtractionType := extractionresultFields[4].Descriptor()
	// extractionresult.ExtractionTypeValidator is a validator for the "extraction_type" field. It is called by the builders before save.
	extractionresult.ExtractionTypeValidator = extractionresultDescExtractionType.Validators[0].(func(string) error)
	// extractionresultDescModel is the schema descriptor for model field.
	extractionresultDescModel := extractionresultFields[8].Descriptor()
	// extractionresult.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	extractionresult.ModelValidator = extractionresultDescModel.Validators[0].(func(string) error)
	// extractionresultDescCreatedAt is the schema descriptor for created_at field.
	extractionresultDescCreatedAt := extractionresultFields[9].Descriptor()
	// extractionresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionresult.DefaultCreatedAt = extractionresultDescCreatedAt.Default.(func() time.Time)
	// extractionresultDescID is the schema descriptor for id field.
	extractionresultDescID := extractionresultFields[0].Descriptor()
	// extractionresult.DefaultID holds the default value on creation for the id field.
	extractionresult.DefaultID = extractionresultDescID.Default.(func() uuid.UUID)
	processingsessionFields := schema.ProcessingSession{}.Fields()
	_ = processingsessionFields
	// processingsessionDescStatus is the schema descriptor for status field.
	processingsessionDescStatus := processingsessionFields[7].Descriptor()
	// processingsession.DefaultStatus holds the default value on creation for the status field.
	processingsession.DefaultStatus = processingsessionDescStatus.Default.(string)
	// processingsession.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingsession.StatusValidator = processingsessionDescStatus.Validators[0].(func(string) error)
	// processingsessionDescProcessingTimeMs is the schema descriptor for processing_time_ms field.
	processingsessionDescProcessingTimeMs := processingsessionFields[9].Descriptor()
	// processingsession.DefaultProcessingTimeMs holds the default value on creation for the processing_time_ms field.
	processingsession.DefaultProcessingTimeMs = processingsessionDescProcessingTimeMs.Default.(int64)
	// processingsessionDescModel is the schema descriptor for model field.
	processingsessionDescModel := processingsessionFields[11].Descriptor()
	// processingsession.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	processingsession.ModelValidator = processingsessionDescModel.Validators[0].(func(string) error)
	// processingsessionDescCreatedAt is the schema descriptor for created_at field.
	processingsessionDescCreatedAt := processingsessionFields[12].Descriptor()
	// processingsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingsession.DefaultCreatedAt = processingsessionDescCreatedAt.Default.(func() time.Time)
	// processingsessionDescID is the schema descriptor for id field.
	processingsessionDescID := processingsessionFields[0].Descriptor()
	// processingsession.DefaultID holds the default value on creation for the id field.
	processingsession.DefaultID = processingsessionDescID.Default.(func() uuid.UUID)
	summarizationFields := schema.Summarization{}.Fields()
	_ = summarizationFields
	// summarizationDescModel is the schema descriptor for model field.
	summarizationDescModel := summarizationFields[4].Descriptor()
	// summarization.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	summarization.ModelValidator = summarizationDescModel.Validators[0].(func(string) error)
	// summarizationDescCreatedAt is the schema descriptor for created_at field.
	summarizationDescCreatedAt := summarizationFields[7].Descriptor()
	// summarization.DefaultCreatedAt holds the default value on creation for the created_at field.
	summarization.DefaultCreatedAt = summarizationDescCreatedAt.Default.(func() time.Time)
	// summarizationDescID is the schema descriptor for id field.
	summarizationDescID := summarizationFields[0].Descriptor()
	// summarization.DefaultID holds the default value on creation for the id field.
	summarization.DefaultID = summarizationDescID.Default.(func() uuid.UUID)
	summarizationpromptFields := schema.SummarizationPrompt{}.Fields()
	_ = summarizationpromptFields
	// summarizationpromptDescName is the schema descriptor for name field.
	summarizationpromptDescName := summarizationpromptFields[1].Descriptor()
	// summarizationprompt.NameValidator is a validator for the "name" field. It is called by the builders before save.
	summarizationprompt.NameValidator = summarizationpromptDescName.Validators[0].(func(string) error)
	// summarizationpromptDescPrompt is the schema descriptor for prompt field.
	summarizationpromptDescPrompt := summarizationpromptFields[2].Descriptor()
	// summarizationprompt.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	summarizationprompt.PromptValidator = summarizationpromptDescPrompt.Validators[0].(func(string) error)
	// summarizationpromptDescIsDefault is the schema descriptor for is_default field.
	summarizationpromptDescIsDefault := summarizationpromptFields[3].Descriptor()
	// summarizationprompt.DefaultIsDefault holds the default value on creation for the is_default field.
	summarizationprompt.DefaultIsDefault = summarizationpromptDescIsDefault.Default.(bool)
	// summarizationpromptDescIsActive is the schema descriptor for is_active field.
	summarizationpromptDescIsActive := summarizationpromptFields[4].Descriptor()
	// summarizationprompt.DefaultIsActive holds the default value on creation for the is_active field.
	summarizationprompt.DefaultIsActive = summarizationpromptDescIsActive.Default.(bool)
	// summarizationpromptDescCreatedAt is the schema descriptor for created_at field.
	summarizationpromptDescCreatedAt := summarizationpromptFields[5].Descriptor()
	// summarizationprompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	summarizationprompt.DefaultCreatedAt = summarizationpromptDescCreatedAt.Default.(func() time.Time)
	// summarizationpromptDescUpdatedAt is the schema descriptor for updated_at field.
	summarizationpromptDescUpdatedAt := summarizationpromptFields[6].Descriptor()
	// summarizationprompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	summarizationprompt.DefaultUpdatedAt = summarizationpromptDescUpdatedAt.Default.(func() time.Time)
	// summarizationprompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	summarizationprompt.UpdateDefaultUpdatedAt = summarizationpromptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// summarizationpromptDescID is the schema descriptor for id field.
	summarizationpromptDescID := summarizationpromptFields[0].Descriptor()
	// summarizationprompt.DefaultID holds the default value on creation for the id field.
	summarizationprompt.DefaultID = summarizationpromptDescID.Default.(func() uuid.UUID)
	transcriptfileFields := schema.TranscriptFile{}.Fields()
	_ = transcriptfileFields
	// transcriptfileDescFilename is the schema descriptor for filename field.
	transcriptfileDescFilename := transcriptfileFields[1].Descriptor()
	// transcriptfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	transcriptfile.FilenameValidator = transcriptfileDescFilename.Validators[0].(func(string) error)
	// transcriptfileDescSourcePath is the schema descriptor for source_path field.
	transcriptfileDescSourcePath := transcriptfileFields[2].Descriptor()
	// transcriptfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	transcriptfile.SourcePathValidator = transcriptfileDescSourcePath.Validators[0].(func(string) error)
	// transcriptfileDescUploadedAt is the schema descriptor for uploaded_at field.
	transcriptfileDescUploadedAt := transcriptfileFields[7].Descriptor()
	// transcriptfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	transcriptfile.DefaultUploadedAt = transcriptfileDescUploadedAt.Default.(func() time.Time)
	// transcriptfileDescID is the schema descriptor for id field.
	transcriptfileDescID := transcriptfileFields[0].Descriptor()
	// transcriptfile.DefaultID holds the default value on creation for the id field.
	transcriptfile.DefaultID = transcriptfileDescID.Default.(func() uuid.UUID)
}
