package transcript

import (
	"encoding/json"
	"testing"

	"github.com/jide-alade/voicenotes-tracker/internal/entity"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{
			name: "speakers and timestamps",
			segments: []Segment{
				{Speaker: "Alex", Start: 0, Text: "Morning standup notes."},
				{Speaker: "Alex", Start: 75.4, Text: "Finish the report by Friday."},
			},
			want: "[00:00] Alex: Morning standup notes.\n[01:15] Alex: Finish the report by Friday.",
		},
		{
			name: "no speaker",
			segments: []Segment{
				{Start: 3, Text: "Just a quick reminder."},
			},
			want: "[00:03] Just a quick reminder.",
		},
		{
			name: "empty segments skipped",
			segments: []Segment{
				{Text: "   "},
				{Speaker: "Sam", Start: 10, Text: "Call the plumber."},
			},
			want: "[00:10] Sam: Call the plumber.",
		},
		{
			name: "negative start clamped",
			segments: []Segment{
				{Start: -5, Text: "Clock skew happens."},
			},
			want: "[00:00] Clock skew happens.",
		},
		{
			name:     "no segments",
			segments: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.segments); got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	flat := "  plain transcript text  "

	t.Run("prefers segments over flat text", func(t *testing.T) {
		f := &entity.TranscriptFile{
			TranscriptText:     &flat,
			TranscriptSegments: json.RawMessage(`[{"speaker":"A","start":0,"text":"hello"}]`),
		}
		got, err := FromFile(f)
		if err != nil {
			t.Fatalf("FromFile() error: %v", err)
		}
		if got != "[00:00] A: hello" {
			t.Errorf("FromFile() = %q", got)
		}
	})

	t.Run("falls back to trimmed flat text", func(t *testing.T) {
		f := &entity.TranscriptFile{TranscriptText: &flat}
		got, err := FromFile(f)
		if err != nil {
			t.Fatalf("FromFile() error: %v", err)
		}
		if got != "plain transcript text" {
			t.Errorf("FromFile() = %q", got)
		}
	})

	t.Run("empty segment list falls back to flat text", func(t *testing.T) {
		f := &entity.TranscriptFile{
			TranscriptText:     &flat,
			TranscriptSegments: json.RawMessage(`[]`),
		}
		got, err := FromFile(f)
		if err != nil {
			t.Fatalf("FromFile() error: %v", err)
		}
		if got != "plain transcript text" {
			t.Errorf("FromFile() = %q", got)
		}
	})

	t.Run("corrupt segments error", func(t *testing.T) {
		f := &entity.TranscriptFile{TranscriptSegments: json.RawMessage(`{"not":"an array"`)}
		if _, err := FromFile(f); err == nil {
			t.Error("FromFile() should fail on undecodable segments")
		}
	})

	t.Run("nothing stored", func(t *testing.T) {
		got, err := FromFile(&entity.TranscriptFile{})
		if err != nil || got != "" {
			t.Errorf("FromFile() = %q, %v", got, err)
		}
	})
}
