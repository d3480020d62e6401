package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/constants"
	"github.com/jide-alade/voicenotes-tracker/gen/ent"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/utils"
)

// StartSessionRequest wraps parameters for opening a processing session.
type StartSessionRequest struct {
	FileID                  uuid.UUID
	SummarizationPromptID   *uuid.UUID
	ExtractionDefinitionIDs []uuid.UUID
	SystemPrompt            string
	Model                   string
}

// SessionRepository is the append-only session ledger. Terminal states are
// set exactly once; Complete/Fail refuse to touch an already-terminal row.
type SessionRepository interface {
	Start(ctx context.Context, req *StartSessionRequest) (*entity.ProcessingSession, error)
	Complete(ctx context.Context, sessionID uuid.UUID, aiResponse string, parsed json.RawMessage, warning string, elapsedMs int64, tokenCount *int) error
	Fail(ctx context.Context, sessionID uuid.UUID, message string, aiResponse string, elapsedMs int64) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*entity.ProcessingSession, error)
}

type sessionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSessionRepository(entc *ent.Client, log *slog.Logger) SessionRepository {
	return &sessionRepo{ent: entc, log: log}
}

func (r *sessionRepo) Start(ctx context.Context, req *StartSessionRequest) (*entity.ProcessingSession, error) {
	builder := r.ent.ProcessingSession.Create().
		SetFileID(req.FileID).
		SetExtractionSelection(req.ExtractionDefinitionIDs).
		SetSystemPrompt(req.SystemPrompt).
		SetModel(req.Model).
		SetStatus(string(constants.SessionProcessing))
	if req.SummarizationPromptID != nil {
		builder = builder.SetSummarizationPromptID(*req.SummarizationPromptID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("session start failed", "file_id", req.FileID, "err", err)
		return nil, err
	}
	r.log.Info("session started", "session_id", row.ID, "file_id", req.FileID, "model", req.Model)
	return utils.ToProcessingSession(row), nil
}

func (r *sessionRepo) Complete(ctx context.Context, sessionID uuid.UUID, aiResponse string, parsed json.RawMessage, warning string, elapsedMs int64, tokenCount *int) error {
	builder := r.ent.ProcessingSession.Update().
		Where(
			processingsession.ID(sessionID),
			processingsession.StatusIn(
				string(constants.SessionPending),
				string(constants.SessionProcessing),
			),
		).
		SetStatus(string(constants.SessionCompleted)).
		SetAiResponse(aiResponse).
		SetProcessingTimeMs(elapsedMs).
		SetCompletedAt(time.Now())
	if len(parsed) > 0 {
		builder = builder.SetParsedResponse(parsed)
	}
	if warning != "" {
		// completed-with-warning: the run degraded but still yielded a full,
		// typed result set
		builder = builder.SetErrorMessage(warning)
	}
	if tokenCount != nil {
		builder = builder.SetTokenCount(*tokenCount)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("session complete failed", "session_id", sessionID, "err", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("session %s is already terminal", sessionID)
	}
	r.log.Info("session completed", "session_id", sessionID, "elapsed_ms", elapsedMs, "warning", warning != "")
	return nil
}

func (r *sessionRepo) Fail(ctx context.Context, sessionID uuid.UUID, message string, aiResponse string, elapsedMs int64) error {
	builder := r.ent.ProcessingSession.Update().
		Where(
			processingsession.ID(sessionID),
			processingsession.StatusIn(
				string(constants.SessionPending),
				string(constants.SessionProcessing),
			),
		).
		SetStatus(string(constants.SessionFailed)).
		SetErrorMessage(message).
		SetProcessingTimeMs(elapsedMs).
		SetCompletedAt(time.Now())
	if aiResponse != "" {
		builder = builder.SetAiResponse(aiResponse)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("session fail-transition failed", "session_id", sessionID, "err", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("session %s is already terminal", sessionID)
	}
	r.log.Warn("session failed", "session_id", sessionID, "error", message)
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, sessionID uuid.UUID) (*entity.ProcessingSession, error) {
	row, err := r.ent.ProcessingSession.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return utils.ToProcessingSession(row), nil
}
