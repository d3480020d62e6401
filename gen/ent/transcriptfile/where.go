// Code generated by ent, DO NOT EDIT.

package transcriptfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldFilename, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldSourcePath, v))
}

// TranscriptText applies equality check predicate on the "transcript_text" field. It's identical to TranscriptTextEQ.
func TranscriptText(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldTranscriptText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldLanguage, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldDurationSeconds, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldUploadedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContainsFold(FieldFilename, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContainsFold(FieldSourcePath, v))
}

// TranscriptTextEQ applies the EQ predicate on the "transcript_text" field.
func TranscriptTextEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldTranscriptText, v))
}

// TranscriptTextNEQ applies the NEQ predicate on the "transcript_text" field.
func TranscriptTextNEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldTranscriptText, v))
}

// TranscriptTextIn applies the In predicate on the "transcript_text" field.
func TranscriptTextIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldTranscriptText, vs...))
}

// TranscriptTextNotIn applies the NotIn predicate on the "transcript_text" field.
func TranscriptTextNotIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldTranscriptText, vs...))
}

// TranscriptTextGT applies the GT predicate on the "transcript_text" field.
func TranscriptTextGT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldTranscriptText, v))
}

// TranscriptTextGTE applies the GTE predicate on the "transcript_text" field.
func TranscriptTextGTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldTranscriptText, v))
}

// TranscriptTextLT applies the LT predicate on the "transcript_text" field.
func TranscriptTextLT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldTranscriptText, v))
}

// TranscriptTextLTE applies the LTE predicate on the "transcript_text" field.
func TranscriptTextLTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldTranscriptText, v))
}

// TranscriptTextContains applies the Contains predicate on the "transcript_text" field.
func TranscriptTextContains(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContains(FieldTranscriptText, v))
}

// TranscriptTextHasPrefix applies the HasPrefix predicate on the "transcript_text" field.
func TranscriptTextHasPrefix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasPrefix(FieldTranscriptText, v))
}

// TranscriptTextHasSuffix applies the HasSuffix predicate on the "transcript_text" field.
func TranscriptTextHasSuffix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasSuffix(FieldTranscriptText, v))
}

// TranscriptTextIsNil applies the IsNil predicate on the "transcript_text" field.
func TranscriptTextIsNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIsNull(FieldTranscriptText))
}

// TranscriptTextNotNil applies the NotNil predicate on the "transcript_text" field.
func TranscriptTextNotNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotNull(FieldTranscriptText))
}

// TranscriptTextEqualFold applies the EqualFold predicate on the "transcript_text" field.
func TranscriptTextEqualFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEqualFold(FieldTranscriptText, v))
}

// TranscriptTextContainsFold applies the ContainsFold predicate on the "transcript_text" field.
func TranscriptTextContainsFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContainsFold(FieldTranscriptText, v))
}

// TranscriptSegmentsIsNil applies the IsNil predicate on the "transcript_segments" field.
func TranscriptSegmentsIsNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIsNull(FieldTranscriptSegments))
}

// TranscriptSegmentsNotNil applies the NotNil predicate on the "transcript_segments" field.
func TranscriptSegmentsNotNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotNull(FieldTranscriptSegments))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldContainsFold(FieldLanguage, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotNull(FieldDurationSeconds))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.TranscriptFile {
	return predicate.TranscriptFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.ProcessingSession) predicate.TranscriptFile {
	return predicate.TranscriptFile(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.TranscriptFile {
	return predicate.TranscriptFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ExtractionResult) predicate.TranscriptFile {
	return predicate.TranscriptFile(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSummarizations applies the HasEdge predicate on the "summarizations" edge.
func HasSummarizations() predicate.TranscriptFile {
	return predicate.TranscriptFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SummarizationsTable, SummarizationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummarizationsWith applies the HasEdge predicate on the "summarizations" edge with a given conditions (other predicates).
func HasSummarizationsWith(preds ...predicate.Summarization) predicate.TranscriptFile {
	return predicate.TranscriptFile(func(s *sql.Selector) {
		step := newSummarizationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptFile) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptFile) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptFile) predicate.TranscriptFile {
	return predicate.TranscriptFile(sql.NotPredicates(p))
}
