package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jide-alade/voicenotes-tracker/internal/entity"
)

// Segment is one diarized slice of a transcript as stored by the
// transcription service.
type Segment struct {
	Speaker string  `json:"speaker,omitempty"`
	Start   float64 `json:"start,omitempty"` // seconds from recording start
	Text    string  `json:"text"`
}

// Flatten renders segments as "[mm:ss] Speaker: text" lines joined by
// newlines, the shape the generation backend receives.
func Flatten(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if i > 0 && b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		b.WriteString(formatTimestamp(seg.Start))
		b.WriteString("] ")
		if speaker := strings.TrimSpace(seg.Speaker); speaker != "" {
			b.WriteString(speaker)
			b.WriteString(": ")
		}
		b.WriteString(text)
	}
	return b.String()
}

// FromFile returns the transcript text for a file, preferring the diarized
// segment list over the flat text when both are present.
func FromFile(f *entity.TranscriptFile) (string, error) {
	if len(f.TranscriptSegments) > 0 {
		var segments []Segment
		if err := json.Unmarshal(f.TranscriptSegments, &segments); err != nil {
			return "", fmt.Errorf("decode transcript segments: %w", err)
		}
		if flat := Flatten(segments); flat != "" {
			return flat, nil
		}
	}
	if f.TranscriptText != nil {
		return strings.TrimSpace(*f.TranscriptText), nil
	}
	return "", nil
}

func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
