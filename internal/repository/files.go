package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/gen/ent"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/utils"
)

type TranscriptFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TranscriptFile, error)
	Create(ctx context.Context, filename, sourcePath string, transcriptText *string, segments json.RawMessage) (*entity.TranscriptFile, error)
}

type transcriptFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTranscriptFileRepository(entc *ent.Client, logger *slog.Logger) TranscriptFileRepository {
	return &transcriptFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *transcriptFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TranscriptFile, error) {
	row, err := r.ent.TranscriptFile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToTranscriptFile(row), nil
}

func (r *transcriptFileRepo) Create(ctx context.Context, filename, sourcePath string, transcriptText *string, segments json.RawMessage) (*entity.TranscriptFile, error) {
	builder := r.ent.TranscriptFile.Create().
		SetFilename(filename).
		SetSourcePath(sourcePath)
	if transcriptText != nil {
		builder = builder.SetTranscriptText(*transcriptText)
	}
	if len(segments) > 0 {
		builder = builder.SetTranscriptSegments(segments)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create transcript file", "filename", filename, "error", err)
		return nil, err
	}
	return utils.ToTranscriptFile(row), nil
}
