package pipeline

import (
	"context"
	"fmt"

	"lingua-pipeline/internal/subtitle"
)

const stageSTT = "stt"

func (c *implCoordinator) Transcribe(ctx context.Context, mediaID string) error {
	lock := c.stageLock(mediaID, stageSTT)
	lock.Lock()
	defer lock.Unlock()

	media, err := c.store.GetMedia(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	c.logger.Info(ctx, "Transcribing media %s (%s)", mediaID, media.FilePath)

	segments, err := c.transcriber.Transcribe(ctx, media.FilePath, media.SourceLanguage)
	if err != nil {
		return fmt.Errorf("transcribe media %s: %w", mediaID, err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("transcribe media %s: no speech recognized", mediaID)
	}

	asset := &subtitle.Asset{
		MediaID:  mediaID,
		Language: media.SourceLanguage,
		Kind:     subtitle.KindOriginal,
		Segments: segments,
	}
	if err := c.store.SaveAsset(ctx, asset); err != nil {
		return fmt.Errorf("save transcript for media %s: %w", mediaID, err)
	}
	if err := c.store.MarkStageDone(ctx, mediaID, stageSTT); err != nil {
		return err
	}

	c.logger.Info(ctx, "Transcription stored: media %s, asset %s, %d segments",
		mediaID, asset.ID, len(segments))
	return nil
}
