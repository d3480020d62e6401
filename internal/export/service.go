package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jide-alade/voicenotes-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	results repository.ResultRepository
	files   repository.TranscriptFileRepository
	logger  *slog.Logger
}

func NewService(results repository.ResultRepository, files repository.TranscriptFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{results: results, files: files, logger: logger}
}

// ExportResultsXLSX returns an XLSX workbook (as bytes) with every stored
// extraction result and summarization for one transcript file.
func (s *Service) ExportResultsXLSX(ctx context.Context, fileID uuid.UUID) ([]byte, error) {
	start := time.Now()

	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("load transcript file: %w", err)
	}
	results, err := s.results.ListExtractionResultsByFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("query extraction results: %w", err)
	}
	summaries, err := s.results.ListSummarizationsByFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("query summarizations: %w", err)
	}

	wb := excelize.NewFile()
	const resultsSheet = "Extractions"
	if index, _ := wb.GetSheetIndex(resultsSheet); index == -1 {
		if _, err := wb.NewSheet(resultsSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := wb.GetSheetIndex(resultsSheet)
	wb.SetActiveSheet(activeIndex)

	headers := []string{
		"File",
		"Extraction Type",
		"Content",
		"Model",
		"Session",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(resultsSheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = wb.SetCellValue(resultsSheet, cell, v)
		}
		write(1, file.Filename)
		write(2, r.ExtractionType)
		write(3, string(r.Content))
		write(4, r.Model)
		write(5, r.SessionID.String())
		write(6, r.CreatedAt.Format(time.RFC3339))
		row++
	}

	if len(summaries) > 0 {
		const summarySheet = "Summaries"
		if _, err := wb.NewSheet(summarySheet); err != nil {
			return nil, err
		}
		sumHeaders := []string{"File", "Summary", "Model", "Session", "Created At"}
		for i, h := range sumHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = wb.SetCellValue(summarySheet, cell, h)
		}
		srow := 2
		for _, sm := range summaries {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, srow)
				_ = wb.SetCellValue(summarySheet, cell, v)
			}
			write(1, file.Filename)
			write(2, sm.Content)
			write(3, sm.Model)
			write(4, sm.SessionID.String())
			write(5, sm.CreatedAt.Format(time.RFC3339))
			srow++
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.results.ok",
		"file_id", fileID, "results", len(results), "summaries", len(summaries),
		"elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
