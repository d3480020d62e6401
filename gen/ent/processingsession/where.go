// Code generated by ent, DO NOT EDIT.

package processingsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldFileID, v))
}

// SummarizationPromptID applies equality check predicate on the "summarization_prompt_id" field. It's identical to SummarizationPromptIDEQ.
func SummarizationPromptID(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldSummarizationPromptID, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldSystemPrompt, v))
}

// AiResponse applies equality check predicate on the "ai_response" field. It's identical to AiResponseEQ.
func AiResponse(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldAiResponse, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldTokenCount, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldCompletedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldFileID, vs...))
}

// SummarizationPromptIDEQ applies the EQ predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDEQ(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldSummarizationPromptID, v))
}

// SummarizationPromptIDNEQ applies the NEQ predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDNEQ(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldSummarizationPromptID, v))
}

// SummarizationPromptIDIn applies the In predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDIn(vs ...uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldSummarizationPromptID, vs...))
}

// SummarizationPromptIDNotIn applies the NotIn predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDNotIn(vs ...uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldSummarizationPromptID, vs...))
}

// SummarizationPromptIDGT applies the GT predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDGT(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldSummarizationPromptID, v))
}

// SummarizationPromptIDGTE applies the GTE predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDGTE(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldSummarizationPromptID, v))
}

// SummarizationPromptIDLT applies the LT predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDLT(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldSummarizationPromptID, v))
}

// SummarizationPromptIDLTE applies the LTE predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDLTE(v uuid.UUID) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldSummarizationPromptID, v))
}

// SummarizationPromptIDIsNil applies the IsNil predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDIsNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIsNull(FieldSummarizationPromptID))
}

// SummarizationPromptIDNotNil applies the NotNil predicate on the "summarization_prompt_id" field.
func SummarizationPromptIDNotNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotNull(FieldSummarizationPromptID))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// AiResponseEQ applies the EQ predicate on the "ai_response" field.
func AiResponseEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldAiResponse, v))
}

// AiResponseNEQ applies the NEQ predicate on the "ai_response" field.
func AiResponseNEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldAiResponse, v))
}

// AiResponseIn applies the In predicate on the "ai_response" field.
func AiResponseIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldAiResponse, vs...))
}

// AiResponseNotIn applies the NotIn predicate on the "ai_response" field.
func AiResponseNotIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldAiResponse, vs...))
}

// AiResponseGT applies the GT predicate on the "ai_response" field.
func AiResponseGT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldAiResponse, v))
}

// AiResponseGTE applies the GTE predicate on the "ai_response" field.
func AiResponseGTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldAiResponse, v))
}

// AiResponseLT applies the LT predicate on the "ai_response" field.
func AiResponseLT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldAiResponse, v))
}

// AiResponseLTE applies the LTE predicate on the "ai_response" field.
func AiResponseLTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldAiResponse, v))
}

// AiResponseContains applies the Contains predicate on the "ai_response" field.
func AiResponseContains(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContains(FieldAiResponse, v))
}

// AiResponseHasPrefix applies the HasPrefix predicate on the "ai_response" field.
func AiResponseHasPrefix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasPrefix(FieldAiResponse, v))
}

// AiResponseHasSuffix applies the HasSuffix predicate on the "ai_response" field.
func AiResponseHasSuffix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasSuffix(FieldAiResponse, v))
}

// AiResponseIsNil applies the IsNil predicate on the "ai_response" field.
func AiResponseIsNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIsNull(FieldAiResponse))
}

// AiResponseNotNil applies the NotNil predicate on the "ai_response" field.
func AiResponseNotNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotNull(FieldAiResponse))
}

// AiResponseEqualFold applies the EqualFold predicate on the "ai_response" field.
func AiResponseEqualFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEqualFold(FieldAiResponse, v))
}

// AiResponseContainsFold applies the ContainsFold predicate on the "ai_response" field.
func AiResponseContainsFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContainsFold(FieldAiResponse, v))
}

// ParsedResponseIsNil applies the IsNil predicate on the "parsed_response" field.
func ParsedResponseIsNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIsNull(FieldParsedResponse))
}

// ParsedResponseNotNil applies the NotNil predicate on the "parsed_response" field.
func ParsedResponseNotNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotNull(FieldParsedResponse))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldTokenCount, v))
}

// TokenCountIsNil applies the IsNil predicate on the "token_count" field.
func TokenCountIsNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIsNull(FieldTokenCount))
}

// TokenCountNotNil applies the NotNil predicate on the "token_count" field.
func TokenCountNotNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotNull(FieldTokenCount))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ProcessingSession {
	return predicate.ProcessingSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.TranscriptFile) predicate.ProcessingSession {
	return predicate.ProcessingSession(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.ProcessingSession {
	return predicate.ProcessingSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ExtractionResult) predicate.ProcessingSession {
	return predicate.ProcessingSession(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingSession) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingSession) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingSession) predicate.ProcessingSession {
	return predicate.ProcessingSession(sql.NotPredicates(p))
}
