package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TranscriptFile represents an already-transcribed recording for data
// transfer between layers. Either the flat text or the segment list is
// populated by the transcription service; the pipeline reads whichever
// is present.
type TranscriptFile struct {
	ID                 uuid.UUID       `json:"id"`
	Filename           string          `json:"filename"`
	SourcePath         string          `json:"source_path"`
	TranscriptText     *string         `json:"transcript_text,omitempty"`
	TranscriptSegments json.RawMessage `json:"transcript_segments,omitempty"`
	Language           *string         `json:"language,omitempty"`
	DurationSeconds    *float64        `json:"duration_seconds,omitempty"`
	UploadedAt         time.Time       `json:"uploaded_at"`
}
