package transcriber

import (
	"context"

	"lingua-pipeline/internal/subtitle"
)

// Transcriber converts a media file into timed subtitle segments.
type Transcriber interface {
	// Transcribe extracts the audio track, runs speech recognition in the
	// given language and returns the resulting segments in order.
	Transcribe(ctx context.Context, mediaPath, language string) ([]subtitle.Segment, error)
}
