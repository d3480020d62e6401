package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	voicenotesv1 "github.com/jide-alade/voicenotes-tracker/gen/voicenotes/v1"
	"github.com/jide-alade/voicenotes-tracker/internal/common"
	"github.com/jide-alade/voicenotes-tracker/internal/export"
	"github.com/jide-alade/voicenotes-tracker/internal/llm"
	"github.com/jide-alade/voicenotes-tracker/internal/llm/openrouter"
	"github.com/jide-alade/voicenotes-tracker/internal/pipeline"
	repo "github.com/jide-alade/voicenotes-tracker/internal/repository"
	svc "github.com/jide-alade/voicenotes-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

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

	composer := llm.NewComposer(templatesRepo, logger)
	router := pipeline.NewRouter(resultsRepo, logger)
	processor := pipeline.NewProcessor(pipeline.Config{
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}, filesRepo, templatesRepo, sessionsRepo, composer, generator, router, logger)

	exporter := export.NewService(resultsRepo, filesRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	processingService := svc.NewProcessingService(processor, filesRepo, sessionsRepo, resultsRepo, exporter, logger)
	voicenotesv1.RegisterProcessingServiceServer(grpcServer, processingService)
	templatesService := svc.NewTemplatesService(templatesRepo, logger)
	voicenotesv1.RegisterTemplatesServiceServer(grpcServer, templatesService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("voicenotes-tracker listening", "addr", cfg.Server.GRPCAddr, "model", cfg.LLM.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
