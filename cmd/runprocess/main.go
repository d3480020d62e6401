package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/internal/common"
	"github.com/jide-alade/voicenotes-tracker/internal/llm"
	"github.com/jide-alade/voicenotes-tracker/internal/llm/openrouter"
	"github.com/jide-alade/voicenotes-tracker/internal/pipeline"
	repo "github.com/jide-alade/voicenotes-tracker/internal/repository"
)

// runprocess runs one dynamic processing pass against a stored transcript
// file, selecting definitions by id from the command line. Useful for
// exercising the pipeline without the gRPC surface.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage: runprocess <file_id> <definition_id>[,<definition_id>...] [summarization_prompt_id]")
		os.Exit(2)
	}
	fileID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid file_id", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	var defIDs []uuid.UUID
	for _, raw := range strings.Split(os.Args[2], ",") {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			logger.Error("invalid definition id", "arg", raw, "error", err)
			os.Exit(2)
		}
		defIDs = append(defIDs, id)
	}
	var promptID *uuid.UUID
	if len(os.Args) >= 4 {
		id, err := uuid.Parse(os.Args[3])
		if err != nil {
			logger.Error("invalid summarization_prompt_id", "arg", os.Args[3], "error", err)
			os.Exit(2)
		}
		promptID = &id
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	filesRepo := repo.NewTranscriptFileRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	sessionsRepo := repo.NewSessionRepository(entc, logger)
	resultsRepo := repo.NewResultRepository(entc, logger)

	generator := openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(pipeline.Config{
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}, filesRepo, templatesRepo, sessionsRepo,
		llm.NewComposer(templatesRepo, logger), generator,
		pipeline.NewRouter(resultsRepo, logger), logger)

	result, err := processor.Run(ctx, &pipeline.RunRequest{
		FileID:                  fileID,
		SummarizationPromptID:   promptID,
		ExtractionDefinitionIDs: defIDs,
	})
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("run finished",
		"session_id", result.SessionID,
		"results", result.ExtractionResultsCount,
		"summary_written", result.SummaryWritten,
		"warning", result.Warning,
		"elapsed_ms", result.ProcessingTimeMs)
}
