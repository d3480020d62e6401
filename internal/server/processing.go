package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	voicenotesv1 "github.com/jide-alade/voicenotes-tracker/gen/voicenotes/v1"
	"github.com/jide-alade/voicenotes-tracker/internal/common"
	"github.com/jide-alade/voicenotes-tracker/internal/export"
	"github.com/jide-alade/voicenotes-tracker/internal/llm"
	"github.com/jide-alade/voicenotes-tracker/internal/pipeline"
	"github.com/jide-alade/voicenotes-tracker/internal/repository"
)

// ProcessingService runs dynamic extraction over transcript files and
// serves the stored results.
type ProcessingService struct {
	voicenotesv1.UnimplementedProcessingServiceServer
	processor *pipeline.Processor
	files     repository.TranscriptFileRepository
	sessions  repository.SessionRepository
	results   repository.ResultRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewProcessingService(
	processor *pipeline.Processor,
	files repository.TranscriptFileRepository,
	sessions repository.SessionRepository,
	results repository.ResultRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ProcessingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessingService{
		processor: processor,
		files:     files,
		sessions:  sessions,
		results:   results,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *ProcessingService) RegisterTranscriptFile(ctx context.Context, req *voicenotesv1.RegisterTranscriptFileRequest) (*voicenotesv1.RegisterTranscriptFileResponse, error) {
	v := common.NewValidator().
		Field("filename", req.GetFilename(), common.Required, common.MaxLength(512)).
		Field("source_path", req.GetSourcePath(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	var text *string
	if t := req.GetTranscriptText(); t != "" {
		text = &t
	}
	var segments json.RawMessage
	if sj := req.GetSegmentsJson(); sj != "" {
		if !json.Valid([]byte(sj)) {
			return nil, common.InvalidArgumentError("segments_json is not valid JSON")
		}
		segments = json.RawMessage(sj)
	}

	file, err := s.files.Create(ctx, req.GetFilename(), req.GetSourcePath(), text, segments)
	if err != nil {
		s.logger.Error("server.register_file.failed", "filename", req.GetFilename(), "error", err)
		return nil, common.InternalError("failed to register transcript file")
	}
	return &voicenotesv1.RegisterTranscriptFileResponse{FileId: file.ID.String()}, nil
}

func (s *ProcessingService) RunDynamicProcessing(ctx context.Context, req *voicenotesv1.RunDynamicProcessingRequest) (*voicenotesv1.RunDynamicProcessingResponse, error) {
	v := common.NewValidator().
		Field("file_id", req.GetFileId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	fileID, _ := uuid.Parse(req.GetFileId())

	var promptID *uuid.UUID
	if raw := req.GetSummarizationPromptId(); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentError("summarization_prompt_id must be a valid UUID")
		}
		promptID = &id
	}

	defIDs := make([]uuid.UUID, 0, len(req.GetExtractionDefinitionIds()))
	for _, raw := range req.GetExtractionDefinitionIds() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("extraction_definition_ids contains invalid UUID %q", raw)
		}
		defIDs = append(defIDs, id)
	}

	result, err := s.processor.Run(ctx, &pipeline.RunRequest{
		FileID:                    fileID,
		SummarizationPromptID:     promptID,
		ExtractionDefinitionIDs:   defIDs,
		CustomSummarizationPrompt: req.GetCustomSummarizationPrompt(),
	})
	if err != nil {
		return nil, s.mapRunError(err)
	}

	return &voicenotesv1.RunDynamicProcessingResponse{
		SessionId:              result.SessionID.String(),
		ExtractionResultsCount: int32(result.ExtractionResultsCount),
		SummaryWritten:         result.SummaryWritten,
		Warning:                result.Warning,
		ProcessingTimeMs:       result.ProcessingTimeMs,
	}, nil
}

// mapRunError translates the pipeline error taxonomy into status codes.
// Caller faults are 4xx-class; integrity and infrastructure failures are 5xx.
func (s *ProcessingService) mapRunError(err error) error {
	var unknown *llm.UnknownTemplateError
	var integrity *pipeline.DataIntegrityError
	switch {
	case errors.Is(err, llm.ErrEmptySelection):
		return common.InvalidArgumentError("selection is empty: pick at least one template")
	case errors.As(err, &unknown):
		return common.NotFoundError(unknown.Error())
	case errors.As(err, &integrity):
		s.logger.Error("server.run.integrity_violation", "error", err)
		return common.InternalError(integrity.Error())
	default:
		s.logger.Error("server.run.failed", "error", err)
		return common.InternalError("processing run failed")
	}
}

func (s *ProcessingService) GetSession(ctx context.Context, req *voicenotesv1.GetSessionRequest) (*voicenotesv1.GetSessionResponse, error) {
	v := common.NewValidator().
		Field("session_id", req.GetSessionId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	sessionID, _ := uuid.Parse(req.GetSessionId())

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, common.NotFoundError(fmt.Sprintf("session %s not found", sessionID))
	}

	out := &voicenotesv1.Session{
		Id:               session.ID.String(),
		FileId:           session.FileID.String(),
		Status:           session.Status,
		Model:            session.Model,
		ProcessingTimeMs: session.ProcessingTimeMs,
		CreatedAt:        session.CreatedAt.Format(time.RFC3339Nano),
	}
	if session.ErrorMessage != nil {
		out.ErrorMessage = *session.ErrorMessage
	}
	return &voicenotesv1.GetSessionResponse{Session: out}, nil
}

func (s *ProcessingService) GetExtractionResults(ctx context.Context, req *voicenotesv1.GetExtractionResultsRequest) (*voicenotesv1.GetExtractionResultsResponse, error) {
	v := common.NewValidator().
		Field("file_id", req.GetFileId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	fileID, _ := uuid.Parse(req.GetFileId())

	rows, err := s.results.ListExtractionResultsByFile(ctx, fileID)
	if err != nil {
		s.logger.Error("server.get_results.failed", "file_id", fileID, "error", err)
		return nil, common.InternalError("failed to list extraction results")
	}

	out := make([]*voicenotesv1.ExtractionResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, &voicenotesv1.ExtractionResult{
			Id:             r.ID.String(),
			SessionId:      r.SessionID.String(),
			DefinitionId:   r.DefinitionID.String(),
			ExtractionType: r.ExtractionType,
			ContentJson:    string(r.Content),
			Model:          r.Model,
			CreatedAt:      r.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	return &voicenotesv1.GetExtractionResultsResponse{Results: out}, nil
}

func (s *ProcessingService) GetSummarizations(ctx context.Context, req *voicenotesv1.GetSummarizationsRequest) (*voicenotesv1.GetSummarizationsResponse, error) {
	v := common.NewValidator().
		Field("file_id", req.GetFileId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	fileID, _ := uuid.Parse(req.GetFileId())

	rows, err := s.results.ListSummarizationsByFile(ctx, fileID)
	if err != nil {
		s.logger.Error("server.get_summaries.failed", "file_id", fileID, "error", err)
		return nil, common.InternalError("failed to list summarizations")
	}

	out := make([]*voicenotesv1.Summarization, 0, len(rows))
	for _, sm := range rows {
		msg := &voicenotesv1.Summarization{
			Id:        sm.ID.String(),
			SessionId: sm.SessionID.String(),
			Content:   sm.Content,
			Model:     sm.Model,
			CreatedAt: sm.CreatedAt.Format(time.RFC3339Nano),
		}
		if sm.TemplateID != nil {
			msg.TemplateId = sm.TemplateID.String()
		}
		out = append(out, msg)
	}
	return &voicenotesv1.GetSummarizationsResponse{Summarizations: out}, nil
}

func (s *ProcessingService) ExportResults(ctx context.Context, req *voicenotesv1.ExportResultsRequest) (*voicenotesv1.ExportResultsResponse, error) {
	v := common.NewValidator().
		Field("file_id", req.GetFileId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	fileID, _ := uuid.Parse(req.GetFileId())

	workbook, err := s.exporter.ExportResultsXLSX(ctx, fileID)
	if err != nil {
		s.logger.Error("server.export.failed", "file_id", fileID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &voicenotesv1.ExportResultsResponse{
		Workbook: workbook,
		Filename: fmt.Sprintf("voicenotes-%s.xlsx", fileID),
	}, nil
}
