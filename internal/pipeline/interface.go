package pipeline

import (
	"context"

	"lingua-pipeline/internal/subtitle"
)

// Coordinator drives the subtitle stages for registered media. Stages never
// chain automatically: each call performs exactly the stage named and the
// caller sequences them.
type Coordinator interface {
	// Transcribe runs speech recognition on the media file and persists the
	// original-language asset. Rerunning replaces the previous transcript.
	Transcribe(ctx context.Context, mediaID string) error

	// Translate produces a translated asset in targetLanguage from the
	// original transcript. It fails with ErrSourceNotReady if transcription
	// has not completed for the media.
	Translate(ctx context.Context, mediaID, targetLanguage string) error

	// Serialize writes the asset's SRT file to storage and returns its path.
	Serialize(ctx context.Context, mediaID, language string, kind subtitle.Kind) (string, error)
}
