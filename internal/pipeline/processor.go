package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/constants"
	"github.com/jide-alade/voicenotes-tracker/internal/llm"
	"github.com/jide-alade/voicenotes-tracker/internal/repository"
	"github.com/jide-alade/voicenotes-tracker/internal/transcript"
)

// Config tunes the generation backend per run.
type Config struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// RunRequest selects what to extract from one transcript file.
type RunRequest struct {
	FileID                    uuid.UUID
	SummarizationPromptID     *uuid.UUID
	ExtractionDefinitionIDs   []uuid.UUID
	CustomSummarizationPrompt string
}

// RunResult reports a finished run. Model unreliability is absorbed before
// this point: a degraded run still returns a result, never an error.
type RunResult struct {
	SessionID              uuid.UUID
	ExtractionResultsCount int
	SummaryWritten         bool
	Warning                string
	ProcessingTimeMs       int64
}

// Processor drives one dynamic processing run end to end: compose the
// prompt and schema, call the backend, validate per key, route results
// to storage, and record the session transitions on the ledger.
type Processor struct {
	cfg       Config
	files     repository.TranscriptFileRepository
	templates llm.TemplateSource
	sessions  repository.SessionRepository
	composer  *llm.Composer
	generator llm.Generator
	router    *Router
	logger    *slog.Logger
}

func NewProcessor(
	cfg Config,
	files repository.TranscriptFileRepository,
	templates llm.TemplateSource,
	sessions repository.SessionRepository,
	composer *llm.Composer,
	generator llm.Generator,
	router *Router,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:       cfg,
		files:     files,
		templates: templates,
		sessions:  sessions,
		composer:  composer,
		generator: generator,
		router:    router,
		logger:    logger,
	}
}

// Run executes one processing run. Errors returned here are caller faults
// (empty selection, unknown template), data integrity violations, or
// infrastructure failures. Backend failures and malformed responses are
// absorbed into fallback rows and reported through RunResult.Warning.
func (p *Processor) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	comp, err := p.composer.Compose(ctx, llm.Selection{
		SummarizationPromptID:     req.SummarizationPromptID,
		ExtractionDefinitionIDs:   req.ExtractionDefinitionIDs,
		CustomSummarizationPrompt: req.CustomSummarizationPrompt,
	})
	if err != nil {
		return nil, err
	}

	file, err := p.files.GetByID(ctx, req.FileID)
	if err != nil {
		return nil, &DataIntegrityError{Cause: fmt.Errorf("transcript file %s: %w", req.FileID, err)}
	}
	text, err := transcript.FromFile(file)
	if err != nil {
		return nil, &DataIntegrityError{Cause: err}
	}

	session, err := p.sessions.Start(ctx, &repository.StartSessionRequest{
		FileID:                  req.FileID,
		SummarizationPromptID:   comp.SummarizationPromptID,
		ExtractionDefinitionIDs: comp.DefinitionIDs,
		SystemPrompt:            comp.SystemPrompt,
		Model:                   p.cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	p.logger.Info("pipeline.run.start",
		"session_id", session.ID, "file_id", req.FileID,
		"keys", len(comp.KeyOrder), "summary", comp.SummarySelected)

	start := time.Now()
	raw, genErr := p.generator.Generate(ctx, llm.GenerationRequest{
		Prompt:       text,
		SystemPrompt: comp.SystemPrompt,
		JSONSchema:   comp.Schema,
		Model:        p.cfg.Model,
		MaxTokens:    p.cfg.MaxTokens,
		Temperature:  p.cfg.Temperature,
	})
	elapsed := time.Since(start).Milliseconds()

	if genErr != nil {
		return p.recoverFromBackendFailure(ctx, session.ID, req.FileID, comp, genErr, elapsed)
	}

	outcome := llm.ParseResponse(comp, raw, p.logger)

	if err := p.verifyIntegrity(ctx, req.FileID, comp); err != nil {
		if ferr := p.sessions.Fail(ctx, session.ID, err.Error(), raw, elapsed); ferr != nil {
			p.logger.Error("pipeline.run.fail_transition_error", "session_id", session.ID, "error", ferr)
		}
		return nil, err
	}

	count, summaryWritten, storeWarn := p.store(ctx, session.ID, req.FileID, comp, outcome, elapsed)
	warning := joinWarnings(outcome.Warning, storeWarn)

	aiResponse := raw
	if strings.TrimSpace(raw) == "" {
		aiResponse = constants.FallbackResponseMarker
	}
	if err := p.sessions.Complete(ctx, session.ID, aiResponse, parsedPayload(outcome), warning, elapsed, nil); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	p.logger.Info("pipeline.run.completed",
		"session_id", session.ID, "results", count,
		"degraded", warning != "", "elapsed_ms", elapsed)

	return &RunResult{
		SessionID:              session.ID,
		ExtractionResultsCount: count,
		SummaryWritten:         summaryWritten,
		Warning:                warning,
		ProcessingTimeMs:       elapsed,
	}, nil
}

// recoverFromBackendFailure marks the session failed, then writes the full
// set of fallback rows so downstream consumers still find one row per key.
// The failure is only surfaced if the fallback writes themselves fail.
func (p *Processor) recoverFromBackendFailure(ctx context.Context, sessionID, fileID uuid.UUID, comp *llm.Composition, genErr error, elapsed int64) (*RunResult, error) {
	message := genErr.Error()
	if errors.Is(genErr, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		message = "cancelled: " + message
	}
	// The request context may already be canceled; the ledger transition and
	// the fallback writes must still land.
	ctx = context.WithoutCancel(ctx)
	if err := p.sessions.Fail(ctx, sessionID, message, "", elapsed); err != nil {
		p.logger.Error("pipeline.run.fail_transition_error", "session_id", sessionID, "error", err)
	}
	p.logger.Warn("pipeline.run.backend_failed",
		"session_id", sessionID, "error", genErr, "elapsed_ms", elapsed)

	if err := p.verifyIntegrity(ctx, fileID, comp); err != nil {
		return nil, err
	}

	outcome := llm.ParseResponse(comp, "", p.logger)
	count, summaryWritten, storeWarn := p.store(ctx, sessionID, fileID, comp, outcome, elapsed)
	if count < len(comp.KeyOrder) {
		return nil, fmt.Errorf("generation failed (%w); fallback write incomplete: %s", genErr, storeWarn)
	}

	return &RunResult{
		SessionID:              sessionID,
		ExtractionResultsCount: count,
		SummaryWritten:         summaryWritten,
		Warning:                joinWarnings(outcome.Warning, storeWarn),
		ProcessingTimeMs:       elapsed,
	}, nil
}

// verifyIntegrity re-checks every referenced row immediately before writing.
// Deleted files or definitions abort the whole write set.
func (p *Processor) verifyIntegrity(ctx context.Context, fileID uuid.UUID, comp *llm.Composition) error {
	if _, err := p.files.GetByID(ctx, fileID); err != nil {
		return &DataIntegrityError{Cause: fmt.Errorf("transcript file %s: %w", fileID, err)}
	}
	if len(comp.DefinitionIDs) == 0 {
		return nil
	}
	defs, err := p.templates.FindActiveDefinitionsByIDs(ctx, comp.DefinitionIDs)
	if err != nil {
		return &DataIntegrityError{Cause: err}
	}
	if len(defs) != len(comp.DefinitionIDs) {
		found := make(map[uuid.UUID]bool, len(defs))
		for _, d := range defs {
			found[d.ID] = true
		}
		var missing []string
		for _, id := range comp.DefinitionIDs {
			if !found[id] {
				missing = append(missing, id.String())
			}
		}
		return &DataIntegrityError{Cause: fmt.Errorf("extraction definitions gone: %s", strings.Join(missing, ", "))}
	}
	return nil
}

// store writes every key result plus the summary. Writes are independent:
// a failed insert is logged and noted, siblings are kept.
func (p *Processor) store(ctx context.Context, sessionID, fileID uuid.UUID, comp *llm.Composition, outcome *llm.ParseOutcome, elapsed int64) (count int, summaryWritten bool, warning string) {
	var failed []string
	for _, kr := range outcome.Keys {
		if _, err := p.router.Route(ctx, fileID, sessionID, p.cfg.Model, kr.Key, kr.Binding, kr.Value, elapsed); err != nil {
			p.logger.Error("pipeline.store.result_failed",
				"session_id", sessionID, "json_key", kr.Key, "error", err)
			failed = append(failed, kr.Key)
			continue
		}
		count++
	}

	if comp.SummarySelected {
		if _, err := p.router.RouteSummary(ctx, fileID, sessionID, comp.SummarizationPromptID, p.cfg.Model, comp.SummaryPrompt, outcome.Summary); err != nil {
			p.logger.Error("pipeline.store.summary_failed", "session_id", sessionID, "error", err)
			failed = append(failed, constants.SummaryKey)
		} else {
			summaryWritten = true
		}
	}

	if len(failed) > 0 {
		warning = fmt.Sprintf("%d write(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return count, summaryWritten, warning
}

// parsedPayload reassembles the validated per-key values into the object the
// session stores as its parsed response.
func parsedPayload(outcome *llm.ParseOutcome) json.RawMessage {
	obj := make(map[string]json.RawMessage, len(outcome.Keys)+1)
	for _, kr := range outcome.Keys {
		obj[kr.Key] = kr.Value
	}
	if outcome.Summary != "" || outcome.SummaryFellBack {
		quoted, _ := json.Marshal(outcome.Summary)
		obj[constants.SummaryKey] = quoted
	}
	payload, err := json.Marshal(obj)
	if err != nil {
		return json.RawMessage("{}")
	}
	return payload
}

func joinWarnings(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}
